package domain

type SegmentKind string

const (
	SlideSegmentKind SegmentKind = "slide"
	ClipSegmentKind  SegmentKind = "clip"
)

type ClipFit string

const (
	ClipFitLoop ClipFit = "loop"
	ClipFitTrim ClipFit = "trim"
)

type Beat struct {
	Text   string  `yaml:"text"`
	Weight float64 `yaml:"weight"`
}

type AudioTrack struct {
	FileName string
	Duration float64
}

type VisualSegment struct {
	ID             string
	Ordinal        int
	Kind           SegmentKind
	Text           string
	FontSize       int
	Start          float64
	Duration       float64
	SourceFileName string
	SourceDuration float64
	Fit            ClipFit
	FallbackReason string
	ImageFileName  string
	FileName       string
}

func NewSlideSegment(ordinal int, text string, fontSize int, duration float64) VisualSegment {
	return VisualSegment{
		Ordinal:  ordinal,
		Kind:     SlideSegmentKind,
		Text:     text,
		FontSize: fontSize,
		Duration: duration,
	}
}

func (s VisualSegment) IsFallback() bool {
	return s.Kind == SlideSegmentKind && s.FallbackReason != ""
}

type VisualSegmentsAscByOrdinal []VisualSegment

func (a VisualSegmentsAscByOrdinal) Len() int           { return len(a) }
func (a VisualSegmentsAscByOrdinal) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a VisualSegmentsAscByOrdinal) Less(i, j int) bool { return a[i].Ordinal < a[j].Ordinal }

type VisualTrack struct {
	FileName string
	Segments []VisualSegment
	Duration float64
}

type StockVideoFile struct {
	ID       int    `json:"id"`
	Quality  string `json:"quality"`
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Link     string `json:"link"`
}

type StockVideo struct {
	ID         int              `json:"id"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Duration   int              `json:"duration"`
	URL        string           `json:"url"`
	VideoFiles []StockVideoFile `json:"video_files"`
}

// PreferredFile returns the first variant tagged with quality, or the first
// variant when none is. ok is false when the video has no variants at all.
func (v StockVideo) PreferredFile(quality string) (file StockVideoFile, ok bool) {
	if len(v.VideoFiles) == 0 {
		return StockVideoFile{}, false
	}
	for _, f := range v.VideoFiles {
		if f.Quality == quality {
			return f, true
		}
	}
	return v.VideoFiles[0], true
}
