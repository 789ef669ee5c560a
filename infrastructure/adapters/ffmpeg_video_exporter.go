package adapters

import (
	"context"
	"os"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type ffmpegVideoExporter struct {
	logger      outbound.LoggerPort
	videoConfig *config.VideoConfig
	prober      outbound.MediaProberPort
}

func NewFFmpegVideoExporter(logger outbound.LoggerPort, videoConfig *config.VideoConfig, prober outbound.MediaProberPort) outbound.VideoExporterPort {
	return &ffmpegVideoExporter{
		logger:      logger,
		videoConfig: videoConfig,
		prober:      prober,
	}
}

// Export transcodes the narration to a temporary AAC file and muxes it with
// the visual track. The temporary audio is removed whatever the outcome.
func (x *ffmpegVideoExporter) Export(req outbound.ExportVideoRequest) (*outbound.ExportVideoResponse, error) {
	defer func() {
		err := os.Remove(req.TempAudioFileName)
		if err != nil && !os.IsNotExist(err) {
			x.logger.Error(err, "error removing temporary audio file")
		}
	}()

	err := runFFmpeg(x.audioStream(req))
	if err != nil {
		x.logger.ErrorWithFields(err, "error transcoding narration", map[string]interface{}{
			"audio": req.AudioFileName,
		})
		return nil, err
	}

	err = runFFmpeg(x.muxStream(req))
	if err != nil {
		x.logger.ErrorWithFields(err, "error muxing final video", map[string]interface{}{
			"output": req.OutputFileName,
		})
		return nil, err
	}

	duration, err := x.prober.Duration(context.Background(), req.OutputFileName)
	if err != nil {
		x.logger.Error(err, "error getting final video duration")
		return nil, err
	}

	return &outbound.ExportVideoResponse{
		FileName: req.OutputFileName,
		Duration: duration,
	}, nil
}

func (x *ffmpegVideoExporter) audioStream(req outbound.ExportVideoRequest) *ffmpeg.Stream {
	return ffmpeg.Input(req.AudioFileName).
		Output(req.TempAudioFileName, ffmpeg.KwArgs{
			"vn":  "",
			"c:a": x.videoConfig.AudioCodec,
			"b:a": x.videoConfig.AudioBitrate,
		}).OverWriteOutput()
}

func (x *ffmpegVideoExporter) muxStream(req outbound.ExportVideoRequest) *ffmpeg.Stream {
	video := ffmpeg.Input(req.VisualFileName).Video()
	audio := ffmpeg.Input(req.TempAudioFileName).Audio()

	outputArgs := ffmpeg.KwArgs{
		"c:v":     x.videoConfig.VideoCodec,
		"c:a":     x.videoConfig.AudioCodec,
		"b:a":     x.videoConfig.AudioBitrate,
		"preset":  x.videoConfig.Preset,
		"pix_fmt": x.videoConfig.PixelFormat,
		"r":       x.videoConfig.FrameRate,
	}
	if req.Duration > 0 {
		outputArgs["t"] = formatSeconds(req.Duration)
	}

	return ffmpeg.Output([]*ffmpeg.Stream{video, audio}, req.OutputFileName, outputArgs).OverWriteOutput()
}
