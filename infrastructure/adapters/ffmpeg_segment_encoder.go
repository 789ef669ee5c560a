package adapters

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type ffmpegSegmentEncoder struct {
	logger      outbound.LoggerPort
	videoConfig *config.VideoConfig
	workDir     string
}

func NewFFmpegSegmentEncoder(logger outbound.LoggerPort, videoConfig *config.VideoConfig, workDir string) outbound.SegmentEncoderPort {
	return &ffmpegSegmentEncoder{
		logger:      logger,
		videoConfig: videoConfig,
		workDir:     workDir,
	}
}

// EncodeSlide holds a still image for duration seconds.
func (e *ffmpegSegmentEncoder) EncodeSlide(imageFileName string, duration float64) (string, error) {
	outputFile := e.newSegmentFileName()
	err := runFFmpeg(e.slideStream(imageFileName, duration, outputFile))
	if err != nil {
		e.logger.ErrorWithFields(err, "error encoding slide segment", map[string]interface{}{
			"image":    imageFileName,
			"duration": duration,
		})
		return "", err
	}

	return outputFile, nil
}

// EncodeClip scales and pads the clip to the output frame, loops it when it
// is shorter than the slot and cuts it at duration from the start.
func (e *ffmpegSegmentEncoder) EncodeClip(req outbound.EncodeClipRequest) (string, error) {
	outputFile := e.newSegmentFileName()
	err := runFFmpeg(e.clipStream(req, outputFile))
	if err != nil {
		e.logger.ErrorWithFields(err, "error encoding clip segment", map[string]interface{}{
			"clip":     req.FileName,
			"duration": req.Duration,
			"fit":      req.Fit,
		})
		return "", err
	}

	return outputFile, nil
}

func (e *ffmpegSegmentEncoder) slideStream(imageFileName string, duration float64, outputFile string) *ffmpeg.Stream {
	return ffmpeg.Input(imageFileName, ffmpeg.KwArgs{
		"loop":      1,
		"framerate": e.videoConfig.FrameRate,
	}).Output(outputFile, ffmpeg.KwArgs{
		"t":       formatSeconds(duration),
		"c:v":     e.videoConfig.VideoCodec,
		"tune":    "stillimage",
		"preset":  e.videoConfig.Preset,
		"pix_fmt": e.videoConfig.PixelFormat,
		"r":       e.videoConfig.FrameRate,
	}).OverWriteOutput()
}

func (e *ffmpegSegmentEncoder) clipStream(req outbound.EncodeClipRequest, outputFile string) *ffmpeg.Stream {
	inputArgs := ffmpeg.KwArgs{}
	if req.Fit == domain.ClipFitLoop {
		inputArgs["stream_loop"] = -1
	}

	width := strconv.Itoa(e.videoConfig.Width)
	height := strconv.Itoa(e.videoConfig.Height)

	return ffmpeg.Input(req.FileName, inputArgs).
		Filter("scale", ffmpeg.Args{width, height}, ffmpeg.KwArgs{"force_original_aspect_ratio": "decrease"}).
		Filter("pad", ffmpeg.Args{width, height, "(ow-iw)/2", "(oh-ih)/2"}).
		Filter("setsar", ffmpeg.Args{"1"}).
		Filter("fps", ffmpeg.Args{strconv.Itoa(e.videoConfig.FrameRate)}).
		Output(outputFile, ffmpeg.KwArgs{
			"t":       formatSeconds(req.Duration),
			"c:v":     e.videoConfig.VideoCodec,
			"preset":  e.videoConfig.Preset,
			"pix_fmt": e.videoConfig.PixelFormat,
			"an":      "",
		}).OverWriteOutput()
}

func (e *ffmpegSegmentEncoder) newSegmentFileName() string {
	return filepath.Join(e.workDir, "segment-"+uuid.NewString()+".mp4")
}

// runFFmpeg executes the stream and folds ffmpeg's stderr into the error.
func runFFmpeg(stream *ffmpeg.Stream) error {
	var stderr bytes.Buffer
	err := stream.WithErrorOutput(&stderr).Run()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLines(stderr.String(), 5))
	}
	return nil
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
