package adapters

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/domain"
	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type ffmpegVideoConcatenate struct {
	logger  outbound.LoggerPort
	workDir string
}

func NewFFmpegVideoConcatenate(logger outbound.LoggerPort, workDir string) outbound.ConcatenateVideosPort {
	return &ffmpegVideoConcatenate{
		logger:  logger,
		workDir: workDir,
	}
}

// Concatenate joins the encoded segments in ordinal order with the concat
// demuxer and removes the segment files once the joined file exists.
func (f *ffmpegVideoConcatenate) Concatenate(segments []domain.VisualSegment) (finalFileName string, err error) {
	if len(segments) == 0 {
		return "", domain.ErrNoSegments
	}
	sorted := make([]domain.VisualSegment, len(segments))
	copy(sorted, segments)
	sort.Stable(domain.VisualSegmentsAscByOrdinal(sorted))

	listFileName, err := f.writeList(sorted)
	if err != nil {
		f.logger.Error(err, "Failed to write video list file")
		return "", err
	}
	defer func(name string) {
		err := os.Remove(name)
		if err != nil {
			f.logger.Error(err, "Failed to remove video list file")
		}
	}(listFileName)

	finalFileName = filepath.Join(f.workDir, "visual-"+uuid.NewString()+".mp4")
	err = runFFmpeg(f.concatStream(listFileName, finalFileName))
	if err != nil {
		f.logger.Error(err, "Failed to concatenate videos")
		return "", err
	}

	for _, s := range sorted {
		if err := os.Remove(s.FileName); err != nil {
			f.logger.ErrorWithFields(err, "Failed to remove segment file", map[string]interface{}{
				"file": s.FileName,
			})
		}
	}

	return finalFileName, nil
}

func (f *ffmpegVideoConcatenate) concatStream(listFileName string, outputFile string) *ffmpeg.Stream {
	return ffmpeg.Input(listFileName, ffmpeg.KwArgs{
		"f":    "concat",
		"safe": 0,
	}).Output(outputFile, ffmpeg.KwArgs{
		"c": "copy",
	}).OverWriteOutput()
}

func (f *ffmpegVideoConcatenate) writeList(segments []domain.VisualSegment) (string, error) {
	fileList, err := os.Create(filepath.Join(f.workDir, "concat-"+uuid.NewString()+".txt"))
	if err != nil {
		return "", err
	}
	defer func(fileList *os.File) {
		err := fileList.Close()
		if err != nil {
			f.logger.Error(err, "Failed to close video list file")
		}
	}(fileList)

	writer := bufio.NewWriter(fileList)
	for _, s := range segments {
		if _, err := writer.WriteString(concatListEntry(s.FileName)); err != nil {
			return fileList.Name(), err
		}
	}
	if err := writer.Flush(); err != nil {
		return fileList.Name(), err
	}

	return fileList.Name(), nil
}

func concatListEntry(fileName string) string {
	abs, err := filepath.Abs(fileName)
	if err == nil {
		fileName = abs
	}
	return "file '" + strings.ReplaceAll(fileName, "'", `'\''`) + "'\n"
}
