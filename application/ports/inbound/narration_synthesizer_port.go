package inbound

import (
	"context"

	"beanflow-video-generator/domain"
)

type NarrationSynthesizerPort interface {
	Synthesize(ctx context.Context, narration string) (*domain.AudioTrack, error)
}
