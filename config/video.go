package config

// Output encoding. These are fixed for every run.
const (
	VideoWidth   = 1920
	VideoHeight  = 1080
	FrameRate    = 24
	VideoCodec   = "libx264"
	AudioCodec   = "aac"
	AudioBitrate = "192k"
	PixelFormat  = "yuv420p"
	VideoPreset  = "medium"
)

type VideoConfig struct {
	Width        int
	Height       int
	FrameRate    int
	VideoCodec   string
	AudioCodec   string
	AudioBitrate string
	PixelFormat  string
	Preset       string
}

func GetVideoConfig() *VideoConfig {
	return &VideoConfig{
		Width:        VideoWidth,
		Height:       VideoHeight,
		FrameRate:    FrameRate,
		VideoCodec:   VideoCodec,
		AudioCodec:   AudioCodec,
		AudioBitrate: AudioBitrate,
		PixelFormat:  PixelFormat,
		Preset:       VideoPreset,
	}
}
