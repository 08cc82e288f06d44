package video

import "errors"

var (
	// ErrUnsupportedMedia is returned by Open when the media cannot be read or
	// reports no usable frame rate.
	ErrUnsupportedMedia = errors.New("video: unsupported media")
	// ErrEndOfStream is returned by Read once the source has no more frames.
	ErrEndOfStream = errors.New("video: end of stream")
	// ErrFrameNotReady is returned by Read when a live source has nothing to
	// hand out yet. The cursor does not move; callers retry on the next tick.
	ErrFrameNotReady = errors.New("video: frame not ready")
	// ErrNoSession is returned by operations on a released session.
	ErrNoSession = errors.New("video: no open session")
)
