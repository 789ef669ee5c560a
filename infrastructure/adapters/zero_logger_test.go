package adapters

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "warn")

	logger.Info("generating audio")
	logger.WarnWithFields("falling back to slide", map[string]interface{}{"query": "coffee"})
	logger.Error(errors.New("boom"), "export failed")

	out := buf.String()
	if strings.Contains(out, "generating audio") {
		t.Error("info must be filtered at warn level")
	}
	for _, want := range []string{"falling back to slide", "coffee", "export failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
}

func TestConsoleLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "chatty")

	logger.Debug("hidden")
	logger.Info("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
