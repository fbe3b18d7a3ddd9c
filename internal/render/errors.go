package render

import "errors"

var (
	// ErrNoSurface indicates the host did not provide a drawing surface;
	// the pipeline stays inactive.
	ErrNoSurface = errors.New("render: no drawing surface")

	// ErrUnknownScene indicates a scene name that is not registered.
	ErrUnknownScene = errors.New("render: unknown scene")

	// ErrEmptyRecording indicates an export with no captured frames.
	ErrEmptyRecording = errors.New("render: no frames recorded")
)
