package services

import (
	"context"
	"io"
	"os"
	"strings"

	"beanflow-video-generator/application/ports/inbound"
	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
)

type narrationSynthesizer struct {
	logger         outbound.LoggerPort
	synthesizer    outbound.SpeechSynthesizerPort
	prober         outbound.MediaProberPort
	pipelineConfig *config.PipelineConfig
	speechConfig   *config.SpeechConfig
}

func NewNarrationSynthesizer(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort, prober outbound.MediaProberPort,
	pipelineConfig *config.PipelineConfig, speechConfig *config.SpeechConfig) inbound.NarrationSynthesizerPort {
	return &narrationSynthesizer{
		logger:         logger,
		synthesizer:    synthesizer,
		prober:         prober,
		pipelineConfig: pipelineConfig,
		speechConfig:   speechConfig,
	}
}

// Synthesize writes the spoken narration to the run's audio file and measures
// it. The measured length is the timeline every later stage fits into.
func (s *narrationSynthesizer) Synthesize(ctx context.Context, narration string) (*domain.AudioTrack, error) {
	if strings.TrimSpace(narration) == "" {
		return nil, domain.ErrEmptyScript
	}

	s.logger.InfoWithFields("Generating audio", map[string]interface{}{
		"provider": s.speechConfig.Provider,
		"chars":    len(narration),
	})

	reader, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:     narration,
		Language: s.speechConfig.Language,
		Slow:     s.speechConfig.Slow,
	})
	if err != nil {
		s.logger.Error(err, "Failed to synthesize speech")
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			s.logger.Error(err, "Failed to close the speech stream")
		}
	}(reader)

	fileName := s.pipelineConfig.AudioPath()
	if err := s.writeMediaToFile(reader, fileName); err != nil {
		s.logger.ErrorWithFields(err, "Failed to write audio to file", map[string]interface{}{
			"file": fileName,
		})
		return nil, err
	}

	duration, err := s.prober.Duration(ctx, fileName)
	if err != nil {
		s.logger.Error(err, "Failed to measure audio duration")
		return nil, err
	}
	if duration <= 0 {
		return nil, domain.ErrInvalidAudioDuration
	}

	s.logger.InfoWithFields("Audio generated", map[string]interface{}{
		"file":     fileName,
		"duration": duration,
	})

	return &domain.AudioTrack{
		FileName: fileName,
		Duration: duration,
	}, nil
}

func (s *narrationSynthesizer) writeMediaToFile(reader io.Reader, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			s.logger.Error(err, "Failed to close the file")
		}
	}(file)

	_, err = io.Copy(file, reader)
	return err
}
