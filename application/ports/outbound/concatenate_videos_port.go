package outbound

import (
	"beanflow-video-generator/domain"
)

type ConcatenateVideosPort interface {
	Concatenate(segments []domain.VisualSegment) (string, error)
}
