package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"beanflow-video-generator/application/ports/inbound"
)

const footageKeyPrompt = "\nEnter Pexels API key (or press Enter to skip for text-only video): "

type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// PromptFootageApiKey asks for the stock footage key. An empty answer, or a
// closed input, selects slide-only mode.
func (t *Terminal) PromptFootageApiKey() (string, error) {
	fmt.Fprint(t.out, footageKeyPrompt)
	input, err := t.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	key := strings.TrimSpace(input)

	if key != "" {
		fmt.Fprintln(t.out, "Will use Pexels stock footage")
	} else {
		fmt.Fprintln(t.out, "Will create text-based video (no API key needed)")
	}

	return key, nil
}

func (t *Terminal) PrintSummary(res *inbound.VideoCreatorResponse) {
	fallbacks := 0
	for _, s := range res.Segments {
		if s.IsFallback() {
			fallbacks++
		}
	}

	fmt.Fprintf(t.out, "\nYour BeanFlow pitch video is ready at:\n   %s\n", res.OutputFileName)
	fmt.Fprintf(t.out, "   duration %.2fs (audio %.2fs), %d segments", res.Duration, res.AudioDuration, len(res.Segments))
	if fallbacks > 0 {
		fmt.Fprintf(t.out, ", %d text fallbacks", fallbacks)
	}
	fmt.Fprintln(t.out)
	if res.VideoKey != "" {
		fmt.Fprintf(t.out, "   uploaded as %s (%s)\n", res.VideoKey, res.VideoRegion)
	}
}
