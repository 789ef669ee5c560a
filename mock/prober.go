package mock

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
)

// MediaProber answers by file base name, then with Default.
type MediaProber struct {
	Durations map[string]float64
	Default   float64
	Err       error

	mu     sync.Mutex
	Probed []string
}

func (p *MediaProber) Duration(_ context.Context, fileName string) (float64, error) {
	p.mu.Lock()
	p.Probed = append(p.Probed, fileName)
	p.mu.Unlock()
	if p.Err != nil {
		return 0, p.Err
	}
	if d, ok := p.Durations[filepath.Base(fileName)]; ok {
		return d, nil
	}
	if p.Default > 0 {
		return p.Default, nil
	}
	return 0, fmt.Errorf("no duration for %s", fileName)
}
