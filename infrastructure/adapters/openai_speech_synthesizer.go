package adapters

import (
	"context"
	"io"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"github.com/sashabaranov/go-openai"
)

type openAISpeechSynthesizer struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
	logger outbound.LoggerPort
}

func NewOpenAISpeechSynthesizer(cfg *config.OpenAIConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	clientConfig := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openAISpeechSynthesizer{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		logger: logger,
	}
}

func (o *openAISpeechSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	speed := 1.0
	if req.Slow {
		speed = 0.5
	}

	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.cfg.Model),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(o.cfg.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          speed,
	})
	if err != nil {
		o.logger.ErrorWithFields(err, "Failed to synthesize speech", map[string]interface{}{
			"model": o.cfg.Model,
			"voice": o.cfg.Voice,
		})
		return nil, err
	}

	return resp.ReadCloser, nil
}
