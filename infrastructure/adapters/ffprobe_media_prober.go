package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"beanflow-video-generator/application/ports/outbound"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

type ffprobeMediaProber struct {
	logger outbound.LoggerPort
}

func NewFFprobeMediaProber(logger outbound.LoggerPort) outbound.MediaProberPort {
	return &ffprobeMediaProber{
		logger: logger,
	}
}

func (p *ffprobeMediaProber) Duration(ctx context.Context, fileName string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	out, err := ffmpeg.Probe(fileName)
	if err != nil {
		p.logger.ErrorWithFields(err, "error probing media file", map[string]interface{}{
			"file": fileName,
		})
		return 0, err
	}

	duration, err := parseProbeDuration(out)
	if err != nil {
		p.logger.ErrorWithFields(err, "error parsing media duration", map[string]interface{}{
			"file": fileName,
		})
		return 0, err
	}

	return duration, nil
}

func parseProbeDuration(probeJSON string) (float64, error) {
	var res probeResult
	if err := json.Unmarshal([]byte(probeJSON), &res); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}
	raw := strings.TrimSpace(res.Format.Duration)
	if raw == "" {
		return 0, fmt.Errorf("ffprobe output has no format duration")
	}
	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}

	return duration, nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
