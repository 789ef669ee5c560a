package domain

import "fmt"

// ScaleBeats stretches the nominal beat weights uniformly so that they sum to
// total.
func ScaleBeats(beats []Beat, total float64) ([]float64, error) {
	if len(beats) == 0 {
		return nil, ErrNoBeats
	}
	if total <= 0 {
		return nil, ErrInvalidAudioDuration
	}

	sum := 0.0
	for i, b := range beats {
		if b.Weight <= 0 {
			return nil, fmt.Errorf("beat %d (%q): %w", i, b.Text, ErrInvalidBeatWeight)
		}
		sum += b.Weight
	}

	scale := total / sum
	durations := make([]float64, len(beats))
	for i, b := range beats {
		durations[i] = b.Weight * scale
	}

	return durations, nil
}

func EqualShare(total float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return total / float64(n)
}

// FitClip decides how a clip of length source fills a slot of length target.
func FitClip(source float64, target float64) ClipFit {
	if source < target {
		return ClipFitLoop
	}
	return ClipFitTrim
}

// AssignStartOffsets sets every segment's Start to the cumulative duration of
// the segments before it, in slice order.
func AssignStartOffsets(segments []VisualSegment) {
	offset := 0.0
	for i := range segments {
		segments[i].Start = offset
		offset += segments[i].Duration
	}
}

func TotalDuration(segments []VisualSegment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}
