package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultOutputDir      = "beanflow_output"
	AudioFileName         = "audio.mp3"
	OutputFileName        = "beanflow_pitch.mp4"
	TempAudioFileName     = "temp-audio.m4a"
	ClipFileNamePattern   = "clip_%d.mp4"
	DefaultRenderWorkers  = 4
	DefaultLogLevel       = "info"
	DefaultSearchPerQuery = 3
)

type PipelineConfig struct {
	OutputDir     string
	ScriptFile    string
	RenderWorkers int
	LogLevel      string
}

func GetPipelineConfig() (*PipelineConfig, error) {
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	renderWorkers := DefaultRenderWorkers
	if raw := os.Getenv("RENDER_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("RENDER_WORKERS must be a positive integer, got %q", raw)
		}
		renderWorkers = n
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}

	return &PipelineConfig{
		OutputDir:     filepath.Clean(outputDir),
		ScriptFile:    os.Getenv("SCRIPT_FILE"),
		RenderWorkers: renderWorkers,
		LogLevel:      logLevel,
	}, nil
}

func (c *PipelineConfig) AudioPath() string {
	return filepath.Join(c.OutputDir, AudioFileName)
}

func (c *PipelineConfig) OutputPath() string {
	return filepath.Join(c.OutputDir, OutputFileName)
}

func (c *PipelineConfig) TempAudioPath() string {
	return filepath.Join(c.OutputDir, TempAudioFileName)
}

func (c *PipelineConfig) ClipPath(index int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf(ClipFileNamePattern, index))
}

// EnsureOutputDir creates the output directory if it does not exist yet.
func (c *PipelineConfig) EnsureOutputDir() error {
	return os.MkdirAll(c.OutputDir, 0o755)
}
