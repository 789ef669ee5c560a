package adapters

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type slideRenderer struct {
	slideConfig *config.SlideConfig
	logger      outbound.LoggerPort

	fontOnce sync.Once
	font     *opentype.Font
	fontPath string
}

func NewSlideRenderer(slideConfig *config.SlideConfig, logger outbound.LoggerPort) outbound.SlideRendererPort {
	return &slideRenderer{
		slideConfig: slideConfig,
		logger:      logger,
	}
}

// Render draws the text centered on a solid background and writes it as PNG.
// When no TrueType font can be loaded the built-in bitmap face is used and
// the layout is computed for the fallback font size.
func (r *slideRenderer) Render(req outbound.RenderSlideRequest) (string, error) {
	r.fontOnce.Do(r.loadFont)

	fontSize := req.FontSize
	if fontSize <= 0 {
		fontSize = r.slideConfig.DefaultFontSize
	}

	face, layoutSize, err := r.newFace(fontSize)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to create font face", map[string]interface{}{
			"font":     r.fontPath,
			"fontSize": fontSize,
		})
		return "", err
	}
	defer func(face font.Face) {
		if err := face.Close(); err != nil {
			r.logger.Error(err, "Failed to close font face")
		}
	}(face)

	img := r.draw(face, req.Text, layoutSize)

	fileName := req.FileName
	if fileName == "" {
		fileName = filepath.Join(os.TempDir(), uuid.NewString()+".png")
	}
	if err := writePNG(fileName, img); err != nil {
		r.logger.ErrorWithFields(err, "Failed to write slide image", map[string]interface{}{
			"file": fileName,
		})
		return "", err
	}

	return fileName, nil
}

func (r *slideRenderer) draw(face font.Face, text string, layoutSize int) *image.RGBA {
	cfg := r.slideConfig
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	maxWidth := cfg.Width - cfg.HorizontalMargin
	lines := wrapSlideText(text, charsPerLine(maxWidth, layoutSize, cfg.CharWidthFactor))

	lineHeight := int(float64(layoutSize) * cfg.LineHeightFactor)
	y := (cfg.Height - len(lines)*lineHeight) / 2
	ascent := face.Metrics().Ascent

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.Foreground),
		Face: face,
	}
	for _, line := range lines {
		bounds, _ := font.BoundString(face, line)
		textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
		x := (cfg.Width - textWidth) / 2

		drawer.Dot = fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) + ascent,
		}
		drawer.DrawString(line)
		y += lineHeight
	}

	return img
}

func (r *slideRenderer) newFace(fontSize int) (font.Face, int, error) {
	if r.font == nil {
		return basicfont.Face7x13, r.slideConfig.FallbackFontSize, nil
	}

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(fontSize),
		DPI:     config.SlideDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, 0, err
	}

	return face, fontSize, nil
}

// loadFont takes the first font path that parses. Collections resolve to
// their first face.
func (r *slideRenderer) loadFont() {
	for _, path := range r.slideConfig.FontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			r.logger.WarnWithFields("Failed to parse font", map[string]interface{}{
				"font":  path,
				"error": err.Error(),
			})
			continue
		}
		f, err := collection.Font(0)
		if err != nil {
			continue
		}
		r.font = f
		r.fontPath = path
		r.logger.DebugWithFields("Slide font loaded", map[string]interface{}{
			"font": path,
		})
		return
	}

	r.logger.Warn("No TrueType font found, using the built-in bitmap font")
}

func writePNG(fileName string, img image.Image) (err error) {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
