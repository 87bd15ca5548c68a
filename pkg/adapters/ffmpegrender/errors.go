package ffmpegrender

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
	ErrFFmpegNotFound = errors.New("ffmpegrender: ffmpeg not found")

	// ErrEmptyGraph is returned when the graph has no image inputs.
	ErrEmptyGraph = errors.New("ffmpegrender: empty composition graph")

	// ErrTimeout is returned when the render exceeds its wall clock bound.
	ErrTimeout = errors.New("ffmpegrender: render timed out")
)
