package services

import (
	"context"
	"fmt"

	"beanflow-video-generator/application/ports/inbound"
	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type footageSegmentPlanner struct {
	logger         outbound.LoggerPort
	footage        outbound.StockFootagePort
	prober         outbound.MediaProberPort
	queries        []string
	pipelineConfig *config.PipelineConfig
	pexelsConfig   *config.PexelsConfig
	fontSize       int
}

func NewFootageSegmentPlanner(logger outbound.LoggerPort, footage outbound.StockFootagePort, prober outbound.MediaProberPort,
	queries []string, pipelineConfig *config.PipelineConfig, pexelsConfig *config.PexelsConfig, fontSize int) inbound.SegmentPlannerPort {
	return &footageSegmentPlanner{
		logger:         logger,
		footage:        footage,
		prober:         prober,
		queries:        queries,
		pipelineConfig: pipelineConfig,
		pexelsConfig:   pexelsConfig,
		fontSize:       fontSize,
	}
}

// Plan splits totalDuration evenly across the queries. Each slot gets the
// first downloadable stock clip for its query, or a title slide of the query
// when searching, downloading or probing fails.
func (p *footageSegmentPlanner) Plan(ctx context.Context, totalDuration float64) ([]domain.VisualSegment, error) {
	if len(p.queries) == 0 {
		return nil, domain.ErrNoBeats
	}
	if totalDuration <= 0 {
		return nil, domain.ErrInvalidAudioDuration
	}

	share := domain.EqualShare(totalDuration, len(p.queries))
	titleCaser := cases.Title(language.English)
	segments := make([]domain.VisualSegment, 0, len(p.queries))

	for i, query := range p.queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.logger.InfoWithFields("Searching for footage", map[string]interface{}{
			"query": query,
			"slot":  i,
		})

		segment, err := p.planClip(ctx, i, query, share)
		if err != nil {
			p.logger.WarnWithFields("No usable footage, using a text slide", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
			segment = domain.NewSlideSegment(i, titleCaser.String(query), p.fontSize, share)
			segment.FallbackReason = err.Error()
		}
		segment.ID = uuid.NewString()
		segments = append(segments, segment)
	}
	domain.AssignStartOffsets(segments)

	return segments, nil
}

func (p *footageSegmentPlanner) planClip(ctx context.Context, ordinal int, query string, share float64) (domain.VisualSegment, error) {
	videos, err := p.footage.Search(ctx, outbound.SearchFootageRequest{
		Query:   query,
		PerPage: p.pexelsConfig.PerPage,
	})
	if err != nil {
		return domain.VisualSegment{}, err
	}

	file, ok := pickFootage(videos, p.pexelsConfig.PreferredQuality)
	if !ok {
		return domain.VisualSegment{}, fmt.Errorf("query %q: %w", query, domain.ErrNoFootageCandidate)
	}

	fileName, err := p.footage.Download(ctx, outbound.DownloadFootageRequest{
		Url:      file.Link,
		FileName: p.pipelineConfig.ClipPath(ordinal),
	})
	if err != nil {
		return domain.VisualSegment{}, err
	}

	sourceDuration, err := p.prober.Duration(ctx, fileName)
	if err != nil {
		return domain.VisualSegment{}, err
	}
	if sourceDuration <= 0 {
		return domain.VisualSegment{}, fmt.Errorf("clip %s has no measurable duration", fileName)
	}

	fit := domain.FitClip(sourceDuration, share)
	p.logger.InfoWithFields("Clip ready", map[string]interface{}{
		"file":     fileName,
		"source":   sourceDuration,
		"duration": share,
		"fit":      fit,
	})

	return domain.VisualSegment{
		Ordinal:        ordinal,
		Kind:           domain.ClipSegmentKind,
		Text:           query,
		Duration:       share,
		SourceFileName: fileName,
		SourceDuration: sourceDuration,
		Fit:            fit,
	}, nil
}

// pickFootage returns the preferred variant of the first candidate, in the
// provider's ranking, that has any variant at all.
func pickFootage(videos []domain.StockVideo, quality string) (domain.StockVideoFile, bool) {
	for _, v := range videos {
		if file, ok := v.PreferredFile(quality); ok && file.Link != "" {
			return file, true
		}
	}
	return domain.StockVideoFile{}, false
}
