package outbound

import (
	"context"

	"beanflow-video-generator/domain"
)

type SearchFootageRequest struct {
	Query   string
	PerPage int
}

type DownloadFootageRequest struct {
	Url      string
	FileName string
}

// StockFootagePort searches and downloads stock clips. Search returns an empty
// result without error when no credential is configured.
type StockFootagePort interface {
	Search(ctx context.Context, req SearchFootageRequest) ([]domain.StockVideo, error)
	Download(ctx context.Context, req DownloadFootageRequest) (string, error)
}
