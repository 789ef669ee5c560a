package services

import (
	"context"

	"beanflow-video-generator/application/ports/inbound"
	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/domain"
	"github.com/google/uuid"
)

type slideSegmentPlanner struct {
	logger   outbound.LoggerPort
	beats    []domain.Beat
	fontSize int
}

func NewSlideSegmentPlanner(logger outbound.LoggerPort, beats []domain.Beat, fontSize int) inbound.SegmentPlannerPort {
	return &slideSegmentPlanner{
		logger:   logger,
		beats:    beats,
		fontSize: fontSize,
	}
}

// Plan gives every beat one slide, with the nominal beat lengths stretched so
// that the slides cover exactly totalDuration.
func (p *slideSegmentPlanner) Plan(ctx context.Context, totalDuration float64) ([]domain.VisualSegment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	durations, err := domain.ScaleBeats(p.beats, totalDuration)
	if err != nil {
		p.logger.Error(err, "Failed to scale beats")
		return nil, err
	}

	segments := make([]domain.VisualSegment, len(p.beats))
	for i, beat := range p.beats {
		segments[i] = domain.NewSlideSegment(i, beat.Text, p.fontSize, durations[i])
		segments[i].ID = uuid.NewString()
	}
	domain.AssignStartOffsets(segments)

	p.logger.InfoWithFields("Slides planned", map[string]interface{}{
		"segments": len(segments),
		"duration": totalDuration,
	})

	return segments, nil
}
