package config

import (
	"image/color"
	"os"
)

const (
	DefaultSlideFontSize   = 60
	SlideOnlyFontSize      = 70
	FallbackBitmapFontSize = 20
	SlideHorizontalMargin  = 200
	AverageCharWidthFactor = 0.6
	SlideLineHeightFactor  = 1.5
	SlideDPI               = 72
)

var defaultFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

type SlideConfig struct {
	Width            int
	Height           int
	Foreground       color.RGBA
	Background       color.RGBA
	DefaultFontSize  int
	FallbackFontSize int
	HorizontalMargin int
	CharWidthFactor  float64
	LineHeightFactor float64
	FontPaths        []string
}

// GetSlideConfig returns the slide layout. SLIDE_FONT_PATH, when set, is tried
// before the built-in list of system fonts.
func GetSlideConfig() *SlideConfig {
	fontPaths := make([]string, 0, len(defaultFontPaths)+1)
	if custom := os.Getenv("SLIDE_FONT_PATH"); custom != "" {
		fontPaths = append(fontPaths, custom)
	}
	fontPaths = append(fontPaths, defaultFontPaths...)

	return &SlideConfig{
		Width:            VideoWidth,
		Height:           VideoHeight,
		Foreground:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background:       color.RGBA{R: 30, G: 30, B: 30, A: 255},
		DefaultFontSize:  DefaultSlideFontSize,
		FallbackFontSize: FallbackBitmapFontSize,
		HorizontalMargin: SlideHorizontalMargin,
		CharWidthFactor:  AverageCharWidthFactor,
		LineHeightFactor: SlideLineHeightFactor,
		FontPaths:        fontPaths,
	}
}
