package services

import (
	"context"
	"math"
	"os"

	"beanflow-video-generator/application/ports/inbound"
	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"github.com/google/uuid"
)

type videoCreatorPipeline struct {
	narration      inbound.NarrationSynthesizerPort
	composer       inbound.SegmentComposerPort
	exporter       outbound.VideoExporterPort
	logger         outbound.LoggerPort
	videoPublisher outbound.VideoPublisherPort
	segmentCache   outbound.SegmentCachePort
	pipelineConfig *config.PipelineConfig
	mode           inbound.PipelineMode
}

// NewVideoCreatorPipeline wires the stages of one run. videoPublisher and
// segmentCache may be nil.
func NewVideoCreatorPipeline(
	narration inbound.NarrationSynthesizerPort,
	composer inbound.SegmentComposerPort,
	exporter outbound.VideoExporterPort,
	logger outbound.LoggerPort,
	videoPublisher outbound.VideoPublisherPort,
	segmentCache outbound.SegmentCachePort,
	pipelineConfig *config.PipelineConfig,
	mode inbound.PipelineMode) inbound.VideoCreatorPipelinePort {
	return &videoCreatorPipeline{
		narration:      narration,
		composer:       composer,
		exporter:       exporter,
		logger:         logger,
		videoPublisher: videoPublisher,
		segmentCache:   segmentCache,
		pipelineConfig: pipelineConfig,
		mode:           mode,
	}
}

func (s *videoCreatorPipeline) StartPipeline(ctx context.Context, request inbound.StartPipelineParams) (*inbound.VideoCreatorResponse, error) {
	runID := uuid.NewString()
	s.logger.InfoWithFields("Starting video generation", map[string]interface{}{
		"run_id": runID,
		"mode":   s.mode,
	})

	if err := s.pipelineConfig.EnsureOutputDir(); err != nil {
		s.logger.Error(err, "error creating output directory")
		return nil, err
	}

	audio, err := s.narration.Synthesize(ctx, request.Narration)
	if err != nil {
		s.logger.Error(err, "error generating audio")
		return nil, err
	}

	track, err := s.composer.Compose(ctx, audio.Duration)
	if err != nil {
		s.logger.Error(err, "error composing visual track")
		return nil, err
	}
	defer func(name string) {
		err := os.Remove(name)
		if err != nil && !os.IsNotExist(err) {
			s.logger.Error(err, "error removing visual track file")
		}
	}(track.FileName)

	if drift := math.Abs(track.Duration - audio.Duration); drift > 0.5 {
		s.logger.WarnWithFields("Visual track length differs from audio", map[string]interface{}{
			"visual": track.Duration,
			"audio":  audio.Duration,
		})
	}

	exported, err := s.exporter.Export(outbound.ExportVideoRequest{
		VisualFileName:    track.FileName,
		AudioFileName:     audio.FileName,
		OutputFileName:    s.pipelineConfig.OutputPath(),
		TempAudioFileName: s.pipelineConfig.TempAudioPath(),
		Duration:          track.Duration,
	})
	if err != nil {
		s.logger.Error(err, "error exporting video")
		return nil, err
	}

	res := &inbound.VideoCreatorResponse{
		RunID:          runID,
		OutputFileName: exported.FileName,
		Duration:       exported.Duration,
		AudioDuration:  audio.Duration,
		Mode:           s.mode,
		Segments:       track.Segments,
	}

	s.cacheSegments(ctx, res)
	s.publish(ctx, res)

	s.logger.InfoWithFields("Video created", map[string]interface{}{
		"run_id":   runID,
		"file":     res.OutputFileName,
		"duration": res.Duration,
	})

	return res, nil
}

// cacheSegments stores the segment manifest. Failures are logged only.
func (s *videoCreatorPipeline) cacheSegments(ctx context.Context, res *inbound.VideoCreatorResponse) {
	if s.segmentCache == nil {
		return
	}
	for _, segment := range res.Segments {
		if err := s.segmentCache.Save(ctx, segment, res.RunID); err != nil {
			s.logger.WarnWithFields("Segment manifest not saved", map[string]interface{}{
				"run_id": res.RunID,
				"error":  err.Error(),
			})
			return
		}
	}
}

// publish uploads the output. The local file stays authoritative.
func (s *videoCreatorPipeline) publish(ctx context.Context, res *inbound.VideoCreatorResponse) {
	if s.videoPublisher == nil {
		return
	}
	published, err := s.videoPublisher.Publish(ctx, outbound.PublishVideoRequest{
		VideoFileName: res.OutputFileName,
		RunID:         res.RunID,
	})
	if err != nil {
		s.logger.WarnWithFields("Video not published", map[string]interface{}{
			"run_id": res.RunID,
			"error":  err.Error(),
		})
		return
	}
	res.VideoKey = published.VideoKey
	res.VideoRegion = published.StoreRegion
}
