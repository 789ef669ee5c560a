package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	SpeechProviderGTTS       = "gtts"
	SpeechProviderElevenLabs = "elevenlabs"
	SpeechProviderOpenAI     = "openai"

	SpeechLanguage       = "en"
	DefaultGTTSApiUrl    = "https://translate.google.com/translate_tts"
	DefaultOpenAIModel   = "tts-1"
	DefaultOpenAIVoice   = "alloy"
	DefaultElevenLabsUrl = "https://api.elevenlabs.io/v1/text-to-speech"
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	VoiceID         string
	Stability       float64
	SimilarityBoost float64
}

type OpenAIConfig struct {
	ApiKey  string
	BaseURL string
	Model   string
	Voice   string
}

type SpeechConfig struct {
	Provider   string
	Language   string
	Slow       bool
	GTTSApiUrl string
	ElevenLabs *ElevenLabsConfig
	OpenAI     *OpenAIConfig
}

// GetSpeechConfig reads SPEECH_PROVIDER (gtts by default) and the settings of
// the selected provider. Language and speaking rate are fixed.
func GetSpeechConfig() (*SpeechConfig, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("SPEECH_PROVIDER")))
	if provider == "" {
		provider = SpeechProviderGTTS
	}

	cfg := &SpeechConfig{
		Provider: provider,
		Language: SpeechLanguage,
		Slow:     false,
	}

	switch provider {
	case SpeechProviderGTTS:
		cfg.GTTSApiUrl = os.Getenv("GTTS_API_URL")
		if cfg.GTTSApiUrl == "" {
			cfg.GTTSApiUrl = DefaultGTTSApiUrl
		}
	case SpeechProviderElevenLabs:
		elevenLabs, err := getElevenLabsConfig()
		if err != nil {
			return nil, err
		}
		cfg.ElevenLabs = elevenLabs
	case SpeechProviderOpenAI:
		openAI, err := getOpenAIConfig()
		if err != nil {
			return nil, err
		}
		cfg.OpenAI = openAI
	default:
		return nil, fmt.Errorf("unsupported SPEECH_PROVIDER %q", provider)
	}

	return cfg, nil
}

func getElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		apiUrl = DefaultElevenLabsUrl
	}
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	modelId := os.Getenv("ELEVEN_LABS_MODEL_ID")
	if modelId == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_MODEL_ID must be set")
	}
	voiceID := os.Getenv("ELEVEN_LABS_VOICE_ID")
	if voiceID == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_VOICE_ID must be set")
	}
	stability, err := parseUnitFloat("ELEVEN_LABS_STABILITY", 0.5)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := parseUnitFloat("ELEVEN_LABS_SIMILARITY_BOOST", 0.75)
	if err != nil {
		return nil, err
	}

	return &ElevenLabsConfig{
		ApiUrl:          strings.TrimRight(apiUrl, "/"),
		ApiKey:          apiKey,
		ModelId:         modelId,
		VoiceID:         voiceID,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
	}, nil
}

func getOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	model := os.Getenv("OPENAI_TTS_MODEL")
	if model == "" {
		model = DefaultOpenAIModel
	}
	voice := os.Getenv("OPENAI_TTS_VOICE")
	if voice == "" {
		voice = DefaultOpenAIVoice
	}

	return &OpenAIConfig{
		ApiKey:  apiKey,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   model,
		Voice:   voice,
	}, nil
}

func parseUnitFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 || val > 1 {
		return 0, fmt.Errorf("%s must be a number between 0 and 1, got %q", key, raw)
	}
	return val, nil
}
