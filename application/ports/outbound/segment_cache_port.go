package outbound

import (
	"context"

	"beanflow-video-generator/domain"
)

type SegmentCachePort interface {
	Save(ctx context.Context, segment domain.VisualSegment, runID string) error
}
