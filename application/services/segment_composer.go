package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"beanflow-video-generator/application/ports/inbound"
	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/domain"
	"github.com/google/uuid"
)

type segmentComposer struct {
	logger      outbound.LoggerPort
	planner     inbound.SegmentPlannerPort
	renderer    outbound.SlideRendererPort
	encoder     outbound.SegmentEncoderPort
	concatenate outbound.ConcatenateVideosPort
	workerPool  outbound.TaskDispatcherPort
	workDir     string
}

func NewSegmentComposer(logger outbound.LoggerPort, planner inbound.SegmentPlannerPort, renderer outbound.SlideRendererPort,
	encoder outbound.SegmentEncoderPort, concatenate outbound.ConcatenateVideosPort, workerPool outbound.TaskDispatcherPort,
	workDir string) inbound.SegmentComposerPort {
	return &segmentComposer{
		logger:      logger,
		planner:     planner,
		renderer:    renderer,
		encoder:     encoder,
		concatenate: concatenate,
		workerPool:  workerPool,
		workDir:     workDir,
	}
}

// Compose plans the segments, renders the slide images concurrently, encodes
// every segment in order and joins them into one visual track.
func (c *segmentComposer) Compose(ctx context.Context, totalDuration float64) (*domain.VisualTrack, error) {
	segments, err := c.planner.Plan(ctx, totalDuration)
	if err != nil {
		c.logger.Error(err, "error planning segments")
		return nil, err
	}
	if len(segments) == 0 {
		return nil, domain.ErrNoSegments
	}

	defer c.removeImages(segments)
	if err := c.renderSlides(segments); err != nil {
		c.logger.Error(err, "error rendering slides")
		return nil, err
	}

	if err := c.encodeSegments(ctx, segments); err != nil {
		c.removeSegmentFiles(segments)
		return nil, err
	}

	fileName, err := c.concatenate.Concatenate(segments)
	if err != nil {
		c.logger.Error(err, "error concatenating video segments")
		c.removeSegmentFiles(segments)
		return nil, err
	}

	duration := domain.TotalDuration(segments)
	c.logger.InfoWithFields("Visual track composed", map[string]interface{}{
		"file":     fileName,
		"segments": len(segments),
		"duration": duration,
	})

	return &domain.VisualTrack{
		FileName: fileName,
		Segments: segments,
		Duration: duration,
	}, nil
}

// renderSlides fills ImageFileName for every slide segment. Each task writes
// only its own index, so the result does not depend on scheduling.
func (c *segmentComposer) renderSlides(segments []domain.VisualSegment) error {
	errs := make([]error, len(segments))
	var wg sync.WaitGroup

	for i := range segments {
		if segments[i].Kind != domain.SlideSegmentKind {
			continue
		}
		idx := i
		wg.Add(1)
		err := c.workerPool.Submit(func() {
			defer wg.Done()
			segment := segments[idx]
			fileName, err := c.renderer.Render(outbound.RenderSlideRequest{
				Text:     segment.Text,
				FontSize: segment.FontSize,
				FileName: filepath.Join(c.workDir, "slide-"+uuid.NewString()+".png"),
			})
			if err != nil {
				errs[idx] = fmt.Errorf("slide %d: %w", segment.Ordinal, err)
				return
			}
			segments[idx].ImageFileName = fileName
		})
		if err != nil {
			wg.Done()
			errs[idx] = err
			break
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (c *segmentComposer) encodeSegments(ctx context.Context, segments []domain.VisualSegment) error {
	for i := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}

		segment := segments[i]
		var (
			fileName string
			err      error
		)
		switch segment.Kind {
		case domain.ClipSegmentKind:
			fileName, err = c.encoder.EncodeClip(outbound.EncodeClipRequest{
				FileName: segment.SourceFileName,
				Duration: segment.Duration,
				Fit:      segment.Fit,
			})
		default:
			if segment.ImageFileName == "" {
				return fmt.Errorf("slide %d has no rendered image", segment.Ordinal)
			}
			fileName, err = c.encoder.EncodeSlide(segment.ImageFileName, segment.Duration)
		}
		if err != nil {
			c.logger.ErrorWithFields(err, "error encoding segment", map[string]interface{}{
				"ordinal": segment.Ordinal,
				"kind":    segment.Kind,
			})
			return err
		}
		segments[i].FileName = fileName

		c.logger.DebugWithFields("Segment encoded", map[string]interface{}{
			"ordinal":  segment.Ordinal,
			"kind":     segment.Kind,
			"start":    segment.Start,
			"duration": segment.Duration,
		})
	}

	return nil
}

func (c *segmentComposer) removeImages(segments []domain.VisualSegment) {
	for _, s := range segments {
		if s.ImageFileName == "" {
			continue
		}
		if err := os.Remove(s.ImageFileName); err != nil && !os.IsNotExist(err) {
			c.logger.Error(err, "error removing slide image")
		}
	}
}

func (c *segmentComposer) removeSegmentFiles(segments []domain.VisualSegment) {
	for _, s := range segments {
		if s.FileName == "" {
			continue
		}
		if err := os.Remove(s.FileName); err != nil && !os.IsNotExist(err) {
			c.logger.Error(err, "error removing segment file")
		}
	}
}
