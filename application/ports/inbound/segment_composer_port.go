package inbound

import (
	"context"

	"beanflow-video-generator/domain"
)

type SegmentComposerPort interface {
	Compose(ctx context.Context, totalDuration float64) (*domain.VisualTrack, error)
}
