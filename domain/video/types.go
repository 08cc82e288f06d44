package video

import "image"

// Info is what a source reports about opened media.
type Info struct {
	FPS        float64
	FrameCount int
}

// Source is a frame decoder. Implementations keep a cursor: ReadFrame returns
// the frame at Position and advances it. Live sources may return
// ErrFrameNotReady instead of blocking for their first frame.
type Source interface {
	Open(path string) (Info, error)
	ReadFrame() (*image.RGBA, error)
	Seek(index int) error
	Position() int
	Release() error
}

// SourceFactory returns an unopened Source able to handle path.
type SourceFactory func(path string) Source
