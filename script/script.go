// Package script holds the narration and the beat tables that drive a run.
// The BeanFlow pitch ships embedded; any other YAML file with the same shape
// can replace it.
package script

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"beanflow-video-generator/domain"
	"gopkg.in/yaml.v3"
)

//go:embed beanflow.yaml
var defaultScript []byte

type Script struct {
	Title     string        `yaml:"title"`
	Narration string        `yaml:"narration"`
	Scenes    []domain.Beat `yaml:"scenes"`
	Queries   []string      `yaml:"queries"`
}

// Load reads the script at path, or the embedded BeanFlow script when path is
// empty.
func Load(path string) (*Script, error) {
	data := defaultScript
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read script %s: %w", path, err)
		}
		data = b
	}

	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Script) Validate() error {
	if strings.TrimSpace(s.Narration) == "" {
		return domain.ErrEmptyScript
	}
	if len(s.Scenes) == 0 {
		return domain.ErrNoBeats
	}
	for i, scene := range s.Scenes {
		if scene.Weight <= 0 {
			return fmt.Errorf("scene %d (%q): %w", i, scene.Text, domain.ErrInvalidBeatWeight)
		}
	}
	if len(s.Queries) == 0 {
		return fmt.Errorf("script has no footage queries")
	}
	for i, q := range s.Queries {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("footage query %d is blank", i)
		}
	}

	return nil
}

func (s *Script) NominalDuration() float64 {
	total := 0.0
	for _, scene := range s.Scenes {
		total += scene.Weight
	}
	return total
}
