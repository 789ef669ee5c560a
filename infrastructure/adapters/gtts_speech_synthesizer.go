package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"beanflow-video-generator/application/ports/outbound"
)

// gTTS endpoint rejects longer fragments.
const gttsMaxChunkRunes = 100

type gttsSpeechSynthesizer struct {
	ContentFetcher
	apiUrl string
	logger outbound.LoggerPort
}

func NewGTTSSpeechSynthesizer(contentFetcher ContentFetcher, apiUrl string, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &gttsSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		apiUrl:         apiUrl,
		logger:         logger,
	}
}

// Synthesize fetches every chunk of the text in order and returns the MP3
// frames appended into one stream.
func (g *gttsSpeechSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	chunks := splitSpeechText(req.Text, gttsMaxChunkRunes)
	var audio bytes.Buffer
	for i, chunk := range chunks {
		httpReq, err := g.getRequest(ctx, chunk, req.Language, req.Slow, i, len(chunks))
		if err != nil {
			g.logger.ErrorWithFields(err, "Failed to create the speech request", map[string]interface{}{
				"chunk": i,
			})
			return nil, err
		}

		payload, err := g.FetchContent(httpReq)
		if err != nil {
			return nil, err
		}
		audio.Write(payload)

		g.logger.DebugWithFields("Speech chunk synthesized", map[string]interface{}{
			"chunk": i + 1,
			"total": len(chunks),
			"bytes": len(payload),
		})
	}

	return io.NopCloser(&audio), nil
}

func (g *gttsSpeechSynthesizer) getRequest(ctx context.Context, text string, language string, slow bool, idx int, total int) (*http.Request, error) {
	speed := "1"
	if slow {
		speed = "0.3"
	}
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", language)
	params.Set("client", "tw-ob")
	params.Set("ttsspeed", speed)
	params.Set("total", strconv.Itoa(total))
	params.Set("idx", strconv.Itoa(idx))
	params.Set("textlen", strconv.Itoa(utf8.RuneCountInString(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "audio/mpeg")

	return req, nil
}

// splitSpeechText packs whitespace separated words into chunks of at most
// maxRunes runes. A word ending a sentence always closes its chunk; a single
// word longer than maxRunes is cut.
func splitSpeechText(text string, maxRunes int) []string {
	chunks := make([]string, 0)
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > maxRunes {
			flush()
			runes := []rune(word)
			chunks = append(chunks, string(runes[:maxRunes]))
			word = string(runes[maxRunes:])
		}

		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen > maxRunes {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen

		if strings.ContainsAny(word[len(word)-1:], ".!?") {
			flush()
		}
	}
	flush()

	return chunks
}
