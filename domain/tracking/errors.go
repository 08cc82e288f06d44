package tracking

import "errors"

var (
	// ErrInvalidROI is returned when a region of interest has zero width or height.
	ErrInvalidROI = errors.New("tracking: invalid region of interest")
	// ErrUnknownKind is returned for tracker names that are not recognised.
	ErrUnknownKind = errors.New("tracking: unknown tracker kind")
)
