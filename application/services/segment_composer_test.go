package services

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
	"beanflow-video-generator/mock"
	"beanflow-video-generator/script"
)

type fixedPlanner struct {
	segments []domain.VisualSegment
}

func (p *fixedPlanner) Plan(_ context.Context, _ float64) ([]domain.VisualSegment, error) {
	return append([]domain.VisualSegment(nil), p.segments...), nil
}

func TestSegmentComposer_SlideOnly(t *testing.T) {
	s, err := script.Load("")
	if err != nil {
		t.Fatal("Failed to load script:", err)
	}
	workDir := t.TempDir()
	logger := mock.NewLogger()
	renderer := &mock.SlideRenderer{}
	encoder := &mock.SegmentEncoder{Dir: workDir}
	concatenator := &mock.Concatenator{Dir: workDir}

	composer := NewSegmentComposer(logger, NewSlideSegmentPlanner(logger, s.Scenes, config.SlideOnlyFontSize),
		renderer, encoder, concatenator, newTestWorkerPool(t), workDir)

	track, err := composer.Compose(context.Background(), 60)
	if err != nil {
		t.Fatal("Failed to compose visual track:", err)
	}

	if len(track.Segments) != 12 || len(renderer.Requests) != 12 || len(encoder.Encoded) != 12 {
		t.Fatalf("expected 12 segments, rendered and encoded, got %d/%d/%d",
			len(track.Segments), len(renderer.Requests), len(encoder.Encoded))
	}
	if math.Abs(track.Duration-60) > 0.5 {
		t.Errorf("expected visual track of 60s, got %f", track.Duration)
	}
	for i, enc := range encoder.Encoded {
		if enc.Source != track.Segments[i].ImageFileName {
			t.Errorf("segment %d encoded from %s, expected %s", i, enc.Source, track.Segments[i].ImageFileName)
		}
		if enc.Duration != track.Segments[i].Duration {
			t.Errorf("segment %d encoded for %f, expected %f", i, enc.Duration, track.Segments[i].Duration)
		}
	}
	for i, seg := range concatenator.Segments {
		if seg.Ordinal != i {
			t.Errorf("concatenation order broken at %d: ordinal %d", i, seg.Ordinal)
		}
	}

	leftovers, err := filepath.Glob(filepath.Join(workDir, "slide-*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("expected slide images to be removed, found %v", leftovers)
	}
}

func TestSegmentComposer_ClipsAndFallbacks(t *testing.T) {
	workDir := t.TempDir()
	planner := &fixedPlanner{segments: []domain.VisualSegment{
		{Ordinal: 0, Kind: domain.ClipSegmentKind, Duration: 7.5, SourceFileName: "clip_0.mp4", Fit: domain.ClipFitLoop},
		{Ordinal: 1, Kind: domain.SlideSegmentKind, Text: "Coffee Shop Busy", FontSize: 60, Duration: 7.5, FallbackReason: "no candidate"},
		{Ordinal: 2, Kind: domain.ClipSegmentKind, Duration: 7.5, SourceFileName: "clip_2.mp4", Fit: domain.ClipFitTrim},
	}}
	renderer := &mock.SlideRenderer{}
	encoder := &mock.SegmentEncoder{Dir: workDir}

	composer := NewSegmentComposer(mock.NewLogger(), planner, renderer, encoder, &mock.Concatenator{Dir: workDir},
		newTestWorkerPool(t), workDir)

	track, err := composer.Compose(context.Background(), 22.5)
	if err != nil {
		t.Fatal("Failed to compose visual track:", err)
	}

	if len(renderer.Requests) != 1 || renderer.Requests[0].Text != "Coffee Shop Busy" || renderer.Requests[0].FontSize != 60 {
		t.Errorf("expected a single fallback slide render, got %+v", renderer.Requests)
	}
	if encoder.Encoded[0].Fit != domain.ClipFitLoop || encoder.Encoded[2].Fit != domain.ClipFitTrim {
		t.Errorf("unexpected clip fits %+v", encoder.Encoded)
	}
	if encoder.Encoded[0].Source != "clip_0.mp4" {
		t.Errorf("expected clip source, got %s", encoder.Encoded[0].Source)
	}
	if track.Duration != 22.5 {
		t.Errorf("expected 22.5s, got %f", track.Duration)
	}
}

func TestSegmentComposer_RenderFailure(t *testing.T) {
	workDir := t.TempDir()
	renderErr := errors.New("disk full")
	encoder := &mock.SegmentEncoder{Dir: workDir}
	planner := NewSlideSegmentPlanner(mock.NewLogger(), []domain.Beat{{Text: "a", Weight: 1}, {Text: "b", Weight: 1}}, 70)

	composer := NewSegmentComposer(mock.NewLogger(), planner, &mock.SlideRenderer{Err: renderErr}, encoder,
		&mock.Concatenator{Dir: workDir}, newTestWorkerPool(t), workDir)

	_, err := composer.Compose(context.Background(), 10)
	if !errors.Is(err, renderErr) {
		t.Fatalf("expected render error, got %v", err)
	}
	if len(encoder.Encoded) != 0 {
		t.Error("nothing should be encoded after a render failure")
	}
}

func TestSegmentComposer_EncodeFailureCleansUp(t *testing.T) {
	workDir := t.TempDir()
	encodeErr := errors.New("ffmpeg exited with status 1")
	planner := NewSlideSegmentPlanner(mock.NewLogger(), []domain.Beat{{Text: "a", Weight: 1}}, 70)

	composer := NewSegmentComposer(mock.NewLogger(), planner, &mock.SlideRenderer{}, &mock.SegmentEncoder{Dir: workDir, Err: encodeErr},
		&mock.Concatenator{Dir: workDir}, newTestWorkerPool(t), workDir)

	if _, err := composer.Compose(context.Background(), 10); !errors.Is(err, encodeErr) {
		t.Fatalf("expected encode error, got %v", err)
	}

	entries, err := os.ReadDir(workDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty work dir, found %d entries", len(entries))
	}
}
