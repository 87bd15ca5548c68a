package pipeline

import "errors"

// Error kinds for the composition pipeline. Every stage failure wraps exactly
// one of these sentinels so callers can classify with errors.Is and map each
// kind to a transport status.
var (
	// ErrInvalidJob marks contract violations rejected before any external
	// process launches: empty frame lists, malformed configuration.
	ErrInvalidJob = errors.New("pipeline: invalid job")

	// ErrInvalidFrame marks an unreadable or undecodable source image.
	// The whole job aborts; no partial video is emitted.
	ErrInvalidFrame = errors.New("pipeline: invalid frame")

	// ErrUpstream marks failures of the external generation service before
	// the render stage is reached.
	ErrUpstream = errors.New("pipeline: upstream service failure")

	// ErrRenderBackend marks failures of the external rendering process:
	// non-zero exit, missing binary, launch failure.
	ErrRenderBackend = errors.New("pipeline: render backend failure")

	// ErrStorage marks operational failures writing the output artifact,
	// reported distinctly from render errors.
	ErrStorage = errors.New("pipeline: storage failure")
)
