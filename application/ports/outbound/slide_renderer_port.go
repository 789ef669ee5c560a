package outbound

type RenderSlideRequest struct {
	Text     string
	FontSize int
	FileName string
}

type SlideRendererPort interface {
	Render(req RenderSlideRequest) (string, error)
}
