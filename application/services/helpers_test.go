package services

import (
	"testing"

	"beanflow-video-generator/config"
	"github.com/panjf2000/ants/v2"
)

func newTestPipelineConfig(t *testing.T) *config.PipelineConfig {
	t.Helper()
	return &config.PipelineConfig{
		OutputDir:     t.TempDir(),
		RenderWorkers: 4,
		LogLevel:      "debug",
	}
}

func newTestSpeechConfig() *config.SpeechConfig {
	return &config.SpeechConfig{
		Provider: config.SpeechProviderGTTS,
		Language: config.SpeechLanguage,
	}
}

func newTestWorkerPool(t *testing.T) *ants.Pool {
	t.Helper()
	workerPool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(workerPool.Release)
	return workerPool
}
