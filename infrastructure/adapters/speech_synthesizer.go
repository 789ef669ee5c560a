package adapters

import (
	"fmt"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
)

// NewSpeechSynthesizer returns the provider selected by SPEECH_PROVIDER.
func NewSpeechSynthesizer(cfg *config.SpeechConfig, contentFetcher ContentFetcher, logger outbound.LoggerPort) (outbound.SpeechSynthesizerPort, error) {
	switch cfg.Provider {
	case config.SpeechProviderGTTS:
		return NewGTTSSpeechSynthesizer(contentFetcher, cfg.GTTSApiUrl, logger), nil
	case config.SpeechProviderElevenLabs:
		return NewElevenLabsSpeechSynthesizer(contentFetcher, cfg.ElevenLabs, logger), nil
	case config.SpeechProviderOpenAI:
		return NewOpenAISpeechSynthesizer(cfg.OpenAI, logger), nil
	default:
		return nil, fmt.Errorf("unsupported speech provider %q", cfg.Provider)
	}
}
