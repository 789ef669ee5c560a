package adapters

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapSlideText(t *testing.T) {
	lines := wrapSlideText("BeanFlow\n\nAI-Powered Coffee Shop Solution", 20)
	expected := []string{"BeanFlow", "", "AI-Powered Coffee", "Shop Solution"}
	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("expected %q, got %q", expected, lines)
	}

	lines = wrapSlideText("a supercalifragilisticexpialidocious word", 10)
	for _, l := range lines {
		if utf8.RuneCountInString(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if strings.ReplaceAll(strings.Join(lines, ""), " ", "") != "asupercalifragilisticexpialidociousword" {
		t.Errorf("wrapping lost characters: %q", lines)
	}
	if lines[0] != "a supercal" {
		t.Errorf("expected the long word to start on the first line, got %q", lines[0])
	}

	lines = wrapSlideText("  spaced    out   words  ", 100)
	if len(lines) != 1 || lines[0] != "spaced out words" {
		t.Errorf("expected collapsed whitespace, got %q", lines)
	}
}

func TestCharsPerLine(t *testing.T) {
	if got := charsPerLine(1720, 60, 0.6); got != 47 {
		t.Errorf("expected 47 chars at size 60, got %d", got)
	}
	if got := charsPerLine(1720, 70, 0.6); got != 40 {
		t.Errorf("expected 40 chars at size 70, got %d", got)
	}
	if got := charsPerLine(1720, 20, 0.6); got != 143 {
		t.Errorf("expected 143 chars at size 20, got %d", got)
	}
	if got := charsPerLine(10, 1000, 0.6); got != 1 {
		t.Errorf("expected at least one char per line, got %d", got)
	}
}
