package mock

import (
	"context"
	"os"
	"sync"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/domain"
)

// FootageProvider serves canned search results and writes a stub file on
// download.
type FootageProvider struct {
	Results     map[string][]domain.StockVideo
	SearchErr   error
	DownloadErr error

	mu        sync.Mutex
	Searches  []outbound.SearchFootageRequest
	Downloads []outbound.DownloadFootageRequest
}

func NewFootageProvider() (*FootageProvider, error) {
	results, err := ReadFootage()
	if err != nil {
		return nil, err
	}
	return &FootageProvider{Results: results}, nil
}

func (f *FootageProvider) Search(_ context.Context, req outbound.SearchFootageRequest) ([]domain.StockVideo, error) {
	f.mu.Lock()
	f.Searches = append(f.Searches, req)
	f.mu.Unlock()
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}
	return f.Results[req.Query], nil
}

func (f *FootageProvider) Download(_ context.Context, req outbound.DownloadFootageRequest) (string, error) {
	f.mu.Lock()
	f.Downloads = append(f.Downloads, req)
	f.mu.Unlock()
	if f.DownloadErr != nil {
		return "", f.DownloadErr
	}
	if err := os.WriteFile(req.FileName, []byte(req.Url), 0o644); err != nil {
		return "", err
	}
	return req.FileName, nil
}
