package outbound

import (
	"context"
	"io"
)

type SynthesizeSpeechRequest struct {
	Text     string
	Language string
	Slow     bool
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (io.ReadCloser, error)
}
