package mock

import (
	"bytes"
	"context"
	"io"
	"sync"

	"beanflow-video-generator/application/ports/outbound"
)

type SpeechSynthesizer struct {
	Payload []byte
	Err     error

	mu       sync.Mutex
	Requests []outbound.SynthesizeSpeechRequest
}

func (s *SpeechSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return io.NopCloser(bytes.NewReader(s.Payload)), nil
}
