// Package opencv adapts gocv decoders and trackers to the video and tracking
// domain interfaces.
package opencv

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"github.com/soocke/frametrack/domain/video"
)

var errNotOpen = errors.New("opencv: capture not open")

// FileSource decodes a media file through an OpenCV VideoCapture.
type FileSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	pos     int
	total   int
}

// NewFileSource returns an unopened source.
func NewFileSource() *FileSource { return &FileSource{} }

// Factory is a video.SourceFactory for file paths.
func Factory(string) video.Source { return NewFileSource() }

func (s *FileSource) Open(path string) (video.Info, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return video.Info{}, fmt.Errorf("%w: %w", video.ErrUnsupportedMedia, err)
	}
	if !capture.IsOpened() {
		_ = capture.Close()
		return video.Info{}, fmt.Errorf("%q: not opened: %w", path, video.ErrUnsupportedMedia)
	}
	s.capture = capture
	s.mat = gocv.NewMat()
	s.pos = 0
	fps := capture.Get(gocv.VideoCaptureFPS)
	frames := capture.Get(gocv.VideoCaptureFrameCount)
	if math.IsNaN(frames) || frames < 0 {
		frames = 0
	}
	s.total = int(frames)
	return video.Info{FPS: fps, FrameCount: s.total}, nil
}

func (s *FileSource) ReadFrame() (*image.RGBA, error) {
	if s.capture == nil {
		return nil, errNotOpen
	}
	if ok := s.capture.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, video.ErrEndOfStream
	}
	frame, err := MatToRGBA(s.mat)
	if err != nil {
		return nil, err
	}
	s.pos++
	return frame, nil
}

func (s *FileSource) Seek(index int) error {
	if s.capture == nil {
		return errNotOpen
	}
	if index < 0 {
		index = 0
	}
	s.capture.Set(gocv.VideoCapturePosFrames, float64(index))
	s.pos = index
	return nil
}

// Position is the decoder's own index of the next frame. Containers with
// variable frame timing can skip or repeat frames, so the local count is only
// used when the capture cannot report it.
func (s *FileSource) Position() int {
	if s.capture == nil {
		return s.pos
	}
	p := s.capture.Get(gocv.VideoCapturePosFrames)
	if math.IsNaN(p) || p < 0 {
		return s.pos
	}
	return int(p)
}

// Release closes the capture and the decode buffer. It is idempotent.
func (s *FileSource) Release() error {
	if s.capture == nil {
		return nil
	}
	err := s.capture.Close()
	if cerr := s.mat.Close(); err == nil {
		err = cerr
	}
	s.capture = nil
	return err
}

var _ video.Source = (*FileSource)(nil)
