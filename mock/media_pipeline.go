package mock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/domain"
)

// SlideRenderer writes an empty placeholder image for every request.
type SlideRenderer struct {
	Err error

	mu       sync.Mutex
	Requests []outbound.RenderSlideRequest
}

func (r *SlideRenderer) Render(req outbound.RenderSlideRequest) (string, error) {
	r.mu.Lock()
	r.Requests = append(r.Requests, req)
	r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	if err := os.WriteFile(req.FileName, nil, 0o644); err != nil {
		return "", err
	}
	return req.FileName, nil
}

type EncodedSegment struct {
	Source   string
	Duration float64
	Fit      domain.ClipFit
	Output   string
}

// SegmentEncoder creates numbered segment files in Dir.
type SegmentEncoder struct {
	Dir string
	Err error

	mu      sync.Mutex
	Encoded []EncodedSegment
}

func (e *SegmentEncoder) EncodeSlide(imageFileName string, duration float64) (string, error) {
	return e.encode(imageFileName, duration, "")
}

func (e *SegmentEncoder) EncodeClip(req outbound.EncodeClipRequest) (string, error) {
	return e.encode(req.FileName, req.Duration, req.Fit)
}

func (e *SegmentEncoder) encode(source string, duration float64, fit domain.ClipFit) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	output := filepath.Join(e.Dir, fmt.Sprintf("segment-%d.mp4", len(e.Encoded)))
	if err := os.WriteFile(output, []byte(source), 0o644); err != nil {
		return "", err
	}
	e.Encoded = append(e.Encoded, EncodedSegment{Source: source, Duration: duration, Fit: fit, Output: output})
	return output, nil
}

// Concatenator records the segment order and removes the segment files the
// way the ffmpeg adapter does.
type Concatenator struct {
	Dir string
	Err error

	Segments []domain.VisualSegment
}

func (c *Concatenator) Concatenate(segments []domain.VisualSegment) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	if len(segments) == 0 {
		return "", domain.ErrNoSegments
	}
	c.Segments = append([]domain.VisualSegment(nil), segments...)
	output := filepath.Join(c.Dir, "visual.mp4")
	if err := os.WriteFile(output, nil, 0o644); err != nil {
		return "", err
	}
	for _, s := range segments {
		_ = os.Remove(s.FileName)
	}
	return output, nil
}

// Exporter writes the output file and reports the requested duration.
type Exporter struct {
	Err error

	Requests []outbound.ExportVideoRequest
}

func (x *Exporter) Export(req outbound.ExportVideoRequest) (*outbound.ExportVideoResponse, error) {
	x.Requests = append(x.Requests, req)
	if x.Err != nil {
		return nil, x.Err
	}
	if err := os.WriteFile(req.OutputFileName, []byte("mp4"), 0o644); err != nil {
		return nil, err
	}
	return &outbound.ExportVideoResponse{FileName: req.OutputFileName, Duration: req.Duration}, nil
}

type VideoPublisher struct {
	Err error

	Requests []outbound.PublishVideoRequest
}

func (p *VideoPublisher) Publish(_ context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	p.Requests = append(p.Requests, req)
	if p.Err != nil {
		return nil, p.Err
	}
	return &outbound.PublishVideoResponse{VideoKey: "beanflow/" + req.RunID + "/" + filepath.Base(req.VideoFileName), StoreRegion: "eu-central-1"}, nil
}

type SegmentCache struct {
	Err error

	Saved []domain.VisualSegment
}

func (c *SegmentCache) Save(_ context.Context, segment domain.VisualSegment, _ string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Saved = append(c.Saved, segment)
	return nil
}
