package inbound

import (
	"context"

	"beanflow-video-generator/domain"
)

type PipelineMode string

const (
	SlideOnlyMode PipelineMode = "slides"
	FootageMode   PipelineMode = "footage"
)

type StartPipelineParams struct {
	Narration string
}

type VideoCreatorResponse struct {
	RunID          string
	OutputFileName string
	Duration       float64
	AudioDuration  float64
	Mode           PipelineMode
	Segments       []domain.VisualSegment
	VideoKey       string
	VideoRegion    string
}

type VideoCreatorPipelinePort interface {
	StartPipeline(ctx context.Context, request StartPipelineParams) (*VideoCreatorResponse, error)
}
