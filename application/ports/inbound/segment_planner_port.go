package inbound

import (
	"context"

	"beanflow-video-generator/domain"
)

// SegmentPlannerPort lays out the visual segments for a timeline of
// totalDuration seconds. Segments come back in ordinal order with Start set.
type SegmentPlannerPort interface {
	Plan(ctx context.Context, totalDuration float64) ([]domain.VisualSegment, error)
}
