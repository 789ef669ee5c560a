package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"beanflow-video-generator/domain"
)

func TestLoad_EmbeddedScript(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal("Failed to load embedded script:", err)
	}

	if len(s.Scenes) != 12 {
		t.Errorf("expected 12 scenes, got %d", len(s.Scenes))
	}
	if len(s.Queries) != 8 {
		t.Errorf("expected 8 queries, got %d", len(s.Queries))
	}
	if s.NominalDuration() != 75 {
		t.Errorf("expected nominal duration 75, got %f", s.NominalDuration())
	}
	if s.Scenes[0].Text != "BeanFlow\nAI-Powered Coffee Shop Solution" {
		t.Errorf("unexpected first scene %q", s.Scenes[0].Text)
	}
	if s.Queries[0] != "coffee shop busy" || s.Queries[7] != "business success" {
		t.Errorf("unexpected query order: %v", s.Queries)
	}
	if !strings.HasPrefix(s.Narration, "Good morning.") {
		t.Errorf("unexpected narration start: %q", s.Narration[:20])
	}
	if strings.Count(s.Narration, "\n\n") != 6 {
		t.Errorf("expected 7 paragraphs in narration")
	}
}

func TestLoad_AlternativeScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	content := `
narration: Hello there.
scenes:
  - text: One
    weight: 1
  - text: Two
    weight: 2
queries:
  - sunrise
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal("Failed to write script file:", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal("Failed to load script:", err)
	}
	if len(s.Scenes) != 2 || s.Scenes[1].Weight != 2 {
		t.Errorf("unexpected scenes: %+v", s.Scenes)
	}
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty narration", "narration: ' '\nscenes: [{text: a, weight: 1}]\nqueries: [q]", domain.ErrEmptyScript},
		{"no scenes", "narration: hi\nqueries: [q]", domain.ErrNoBeats},
		{"zero weight", "narration: hi\nscenes: [{text: a, weight: 0}]\nqueries: [q]", domain.ErrInvalidBeatWeight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.content))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}

	if _, err := Parse([]byte("narration: hi\nscenes: [{text: a, weight: 1}]")); err == nil {
		t.Error("expected error for missing queries")
	}
}
