package adapters

import "strings"

// wrapSlideText splits text on newlines and greedily wraps every paragraph to
// at most width runes per line. Blank paragraphs stay as empty lines. Words
// longer than width are broken across lines.
func wrapSlideText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	lines := make([]string, 0)
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}

	return lines
}

func wrapParagraph(paragraph string, width int) []string {
	lines := make([]string, 0)
	current := make([]rune, 0, width)

	for _, word := range strings.Fields(paragraph) {
		runes := []rune(word)
		for len(runes) > 0 {
			space := 0
			if len(current) > 0 {
				space = 1
			}
			if len(current)+space+len(runes) <= width {
				if space == 1 {
					current = append(current, ' ')
				}
				current = append(current, runes...)
				break
			}
			if len(runes) > width {
				room := width - len(current) - space
				if room <= 0 {
					lines = append(lines, string(current))
					current = current[:0]
					continue
				}
				if space == 1 {
					current = append(current, ' ')
				}
				current = append(current, runes[:room]...)
				runes = runes[room:]
				lines = append(lines, string(current))
				current = current[:0]
				continue
			}
			lines = append(lines, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}

	return lines
}

// charsPerLine estimates how many characters of fontSize fit into width using
// an average glyph width of fontSize*factor.
func charsPerLine(width int, fontSize int, factor float64) int {
	avg := float64(fontSize) * factor
	if avg <= 0 {
		return width
	}
	n := int(float64(width) / avg)
	if n < 1 {
		return 1
	}
	return n
}
