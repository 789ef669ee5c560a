package outbound

type ExportVideoRequest struct {
	VisualFileName    string
	AudioFileName     string
	OutputFileName    string
	TempAudioFileName string
	Duration          float64
}

type ExportVideoResponse struct {
	FileName string
	Duration float64
}

type VideoExporterPort interface {
	Export(req ExportVideoRequest) (*ExportVideoResponse, error)
}
