package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
)

type pexelsSearchResponse struct {
	Page         int                 `json:"page"`
	PerPage      int                 `json:"per_page"`
	TotalResults int                 `json:"total_results"`
	Videos       []domain.StockVideo `json:"videos"`
}

type pexelsFootageClient struct {
	ContentFetcher
	pexelsConfig *config.PexelsConfig
	logger       outbound.LoggerPort
}

func NewPexelsFootageClient(contentFetcher ContentFetcher, pexelsConfig *config.PexelsConfig, logger outbound.LoggerPort) outbound.StockFootagePort {
	return &pexelsFootageClient{
		ContentFetcher: contentFetcher,
		pexelsConfig:   pexelsConfig,
		logger:         logger,
	}
}

func (p *pexelsFootageClient) Search(ctx context.Context, req outbound.SearchFootageRequest) ([]domain.StockVideo, error) {
	if !p.pexelsConfig.Enabled() {
		return nil, nil
	}

	perPage := req.PerPage
	if perPage <= 0 {
		perPage = p.pexelsConfig.PerPage
	}

	httpReq, err := p.getSearchRequest(ctx, req.Query, perPage)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to create the footage search request", map[string]interface{}{
			"query": req.Query,
		})
		return nil, fmt.Errorf("search %q: %w: %w", req.Query, domain.ErrFootageUnavailable, err)
	}

	payload, err := p.FetchContent(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w: %w", req.Query, domain.ErrFootageUnavailable, err)
	}

	var res pexelsSearchResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		p.logger.ErrorWithFields(err, "Failed to decode the footage search response", map[string]interface{}{
			"query": req.Query,
		})
		return nil, fmt.Errorf("search %q: %w: %w", req.Query, domain.ErrFootageUnavailable, err)
	}

	p.logger.DebugWithFields("Footage search completed", map[string]interface{}{
		"query":   req.Query,
		"results": len(res.Videos),
	})

	return res.Videos, nil
}

// Download streams the clip at req.Url into req.FileName. A partially written
// file is removed on failure.
func (p *pexelsFootageClient) Download(ctx context.Context, req outbound.DownloadFootageRequest) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.Url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err)
	}

	body, err := p.StreamContent(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			p.logger.Error(err, "Failed to close the download body")
		}
	}(body)

	file, err := os.Create(req.FileName)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to create the clip file", map[string]interface{}{
			"file": req.FileName,
		})
		return "", fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err)
	}

	chunkSize := p.pexelsConfig.ChunkSize
	if chunkSize <= 0 {
		chunkSize = config.DownloadChunkSize
	}
	// the anonymous struct hides ReadFrom so the fixed buffer is actually used
	written, copyErr := io.CopyBuffer(struct{ io.Writer }{file}, body, make([]byte, chunkSize))
	closeErr := file.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		p.logger.ErrorWithFields(copyErr, "Failed to download clip", map[string]interface{}{
			"file": req.FileName,
		})
		if err := os.Remove(req.FileName); err != nil && !os.IsNotExist(err) {
			p.logger.Error(err, "Failed to remove partial clip file")
		}
		return "", fmt.Errorf("%w: %w", domain.ErrDownloadFailed, copyErr)
	}

	p.logger.DebugWithFields("Clip downloaded", map[string]interface{}{
		"file":  req.FileName,
		"bytes": written,
	})

	return req.FileName, nil
}

func (p *pexelsFootageClient) getSearchRequest(ctx context.Context, query string, perPage int) (*http.Request, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", p.pexelsConfig.Orientation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.pexelsConfig.ApiUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.pexelsConfig.ApiKey)

	return req, nil
}
