package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/config"
	"beanflow-video-generator/domain"
	"beanflow-video-generator/mock"
)

func hasArgPair(args []string, key string, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == key && args[i+1] == value {
			return true
		}
	}
	return false
}

func hasArg(args []string, key string) bool {
	for _, a := range args {
		if a == key {
			return true
		}
	}
	return false
}

func argAfter(args []string, key string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == key {
			return args[i+1]
		}
	}
	return ""
}

func TestFFmpegSegmentEncoder_SlideArgs(t *testing.T) {
	encoder := NewFFmpegSegmentEncoder(mock.NewLogger(), config.GetVideoConfig(), t.TempDir()).(*ffmpegSegmentEncoder)

	args := encoder.slideStream("slide.png", 6.4, "out.mp4").GetArgs()

	for _, pair := range [][2]string{
		{"-loop", "1"},
		{"-framerate", "24"},
		{"-i", "slide.png"},
		{"-t", "6.400"},
		{"-c:v", "libx264"},
		{"-tune", "stillimage"},
		{"-pix_fmt", "yuv420p"},
		{"-r", "24"},
	} {
		if !hasArgPair(args, pair[0], pair[1]) {
			t.Errorf("expected %s %s in %v", pair[0], pair[1], args)
		}
	}
	if !hasArg(args, "-y") || !hasArg(args, "out.mp4") {
		t.Errorf("expected overwritten output file in %v", args)
	}
}

func TestFFmpegSegmentEncoder_ClipArgs(t *testing.T) {
	encoder := NewFFmpegSegmentEncoder(mock.NewLogger(), config.GetVideoConfig(), t.TempDir()).(*ffmpegSegmentEncoder)

	looped := encoder.clipStream(outbound.EncodeClipRequest{FileName: "clip_0.mp4", Duration: 7.5, Fit: domain.ClipFitLoop}, "out.mp4").GetArgs()
	if !hasArgPair(looped, "-stream_loop", "-1") {
		t.Errorf("expected looping input in %v", looped)
	}
	if !hasArgPair(looped, "-t", "7.500") || !hasArg(looped, "-an") {
		t.Errorf("expected duration cut without audio in %v", looped)
	}
	graph := argAfter(looped, "-filter_complex")
	for _, part := range []string{"scale=1920:1080:force_original_aspect_ratio=decrease", "pad=1920:1080:(ow-iw)/2:(oh-ih)/2", "setsar=1", "fps=24"} {
		if !strings.Contains(graph, part) {
			t.Errorf("expected %q in filter graph %q", part, graph)
		}
	}

	trimmed := encoder.clipStream(outbound.EncodeClipRequest{FileName: "clip_1.mp4", Duration: 7.5, Fit: domain.ClipFitTrim}, "out.mp4").GetArgs()
	if hasArg(trimmed, "-stream_loop") {
		t.Errorf("trimmed clip must not loop: %v", trimmed)
	}
	if !hasArgPair(trimmed, "-t", "7.500") {
		t.Errorf("expected trim at 7.5s in %v", trimmed)
	}
}

func TestFFmpegVideoExporter_Args(t *testing.T) {
	exporter := NewFFmpegVideoExporter(mock.NewLogger(), config.GetVideoConfig(), &mock.MediaProber{Default: 60}).(*ffmpegVideoExporter)
	req := outbound.ExportVideoRequest{
		VisualFileName:    "visual.mp4",
		AudioFileName:     "audio.mp3",
		OutputFileName:    "beanflow_pitch.mp4",
		TempAudioFileName: "temp-audio.m4a",
		Duration:          60,
	}

	audioArgs := exporter.audioStream(req).GetArgs()
	if !hasArgPair(audioArgs, "-i", "audio.mp3") || !hasArgPair(audioArgs, "-c:a", "aac") || !hasArgPair(audioArgs, "-b:a", "192k") {
		t.Errorf("unexpected audio transcode args %v", audioArgs)
	}
	if !hasArg(audioArgs, "-vn") || !hasArg(audioArgs, "temp-audio.m4a") {
		t.Errorf("expected audio-only temp output in %v", audioArgs)
	}

	muxArgs := exporter.muxStream(req).GetArgs()
	for _, pair := range [][2]string{
		{"-i", "visual.mp4"},
		{"-i", "temp-audio.m4a"},
		{"-map", "0:v"},
		{"-map", "1:a"},
		{"-c:v", "libx264"},
		{"-c:a", "aac"},
		{"-r", "24"},
		{"-t", "60.000"},
	} {
		if !hasArgPair(muxArgs, pair[0], pair[1]) {
			t.Errorf("expected %s %s in %v", pair[0], pair[1], muxArgs)
		}
	}
	if !hasArg(muxArgs, "beanflow_pitch.mp4") {
		t.Errorf("expected output file in %v", muxArgs)
	}
}

func TestFFmpegVideoExporter_RemovesTempAudioOnFailure(t *testing.T) {
	dir := t.TempDir()
	tempAudio := filepath.Join(dir, config.TempAudioFileName)
	if err := os.WriteFile(tempAudio, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	exporter := NewFFmpegVideoExporter(mock.NewLogger(), config.GetVideoConfig(), &mock.MediaProber{Default: 60})

	_, err := exporter.Export(outbound.ExportVideoRequest{
		VisualFileName:    filepath.Join(dir, "missing-visual.mp4"),
		AudioFileName:     filepath.Join(dir, "missing-audio.mp3"),
		OutputFileName:    filepath.Join(dir, config.OutputFileName),
		TempAudioFileName: tempAudio,
	})
	if err == nil {
		t.Fatal("expected export of missing inputs to fail")
	}
	if _, err := os.Stat(tempAudio); !os.IsNotExist(err) {
		t.Error("temporary audio must be removed after a failed export")
	}
}

func TestFFmpegVideoConcatenate_List(t *testing.T) {
	dir := t.TempDir()
	concatenate := NewFFmpegVideoConcatenate(mock.NewLogger(), dir).(*ffmpegVideoConcatenate)

	listFile, err := concatenate.writeList([]domain.VisualSegment{
		{Ordinal: 0, FileName: filepath.Join(dir, "a.mp4")},
		{Ordinal: 1, FileName: filepath.Join(dir, "it's.mp4")},
	})
	if err != nil {
		t.Fatal("Failed to write concat list:", err)
	}
	content, err := os.ReadFile(listFile)
	if err != nil {
		t.Fatal(err)
	}
	expected := "file '" + filepath.Join(dir, "a.mp4") + "'\n" +
		"file '" + filepath.Join(dir, `it'\''s.mp4`) + "'\n"
	if string(content) != expected {
		t.Errorf("unexpected list file:\n%s\nexpected:\n%s", content, expected)
	}

	args := concatenate.concatStream(listFile, "visual.mp4").GetArgs()
	if !hasArgPair(args, "-f", "concat") || !hasArgPair(args, "-safe", "0") || !hasArgPair(args, "-c", "copy") {
		t.Errorf("unexpected concat args %v", args)
	}

	if _, err := concatenate.Concatenate(nil); !errors.Is(err, domain.ErrNoSegments) {
		t.Errorf("expected ErrNoSegments, got %v", err)
	}
}

func TestParseProbeDuration(t *testing.T) {
	d, err := parseProbeDuration(`{"streams":[],"format":{"filename":"audio.mp3","duration":"61.440000"}}`)
	if err != nil {
		t.Fatal("Failed to parse probe output:", err)
	}
	if d != 61.44 {
		t.Errorf("expected 61.44, got %f", d)
	}

	for _, bad := range []string{`{"format":{}}`, `{"format":{"duration":"N/A"}}`, `not json`} {
		if _, err := parseProbeDuration(bad); err == nil {
			t.Errorf("expected error for %s", bad)
		}
	}
}

func TestLastLines(t *testing.T) {
	if got := lastLines("a\nb\nc\n", 2); got != "b | c" {
		t.Errorf("unexpected tail %q", got)
	}
}
