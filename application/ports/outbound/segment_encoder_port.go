package outbound

import "beanflow-video-generator/domain"

type EncodeClipRequest struct {
	FileName string
	Duration float64
	Fit      domain.ClipFit
}

// SegmentEncoderPort turns one planned segment source into a normalized
// 1920x1080 clip of exactly the requested duration.
type SegmentEncoderPort interface {
	EncodeSlide(imageFileName string, duration float64) (string, error)
	EncodeClip(req EncodeClipRequest) (string, error)
}
