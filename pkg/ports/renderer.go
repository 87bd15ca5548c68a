package ports

import (
	"context"

	"github.com/user/slidecast/pkg/filtergraph"
)

// RenderState describes the lifecycle of one render job inside a
// VideoRenderer. A job moves NotStarted -> Running -> Succeeded or Failed.
// Pre-launch failures (missing binary, unwritable output) jump straight from
// NotStarted to Failed without ever entering Running.
type RenderState int

const (
	// RenderNotStarted means the backend process has not been launched.
	RenderNotStarted RenderState = iota
	// RenderRunning means the backend process is encoding.
	RenderRunning
	// RenderSucceeded means the output file was produced.
	RenderSucceeded
	// RenderFailed means the job ended without a usable output.
	RenderFailed
)

// String returns the state name.
func (s RenderState) String() string {
	switch s {
	case RenderNotStarted:
		return "not-started"
	case RenderRunning:
		return "running"
	case RenderSucceeded:
		return "succeeded"
	case RenderFailed:
		return "failed"
	}
	return "unknown"
}

// EncodingParams configures the output encoding of a render.
type EncodingParams struct {
	Codec       string // video codec (e.g. libx264)
	PixelFormat string // output pixel format (e.g. yuv420p)
	CRF         int    // quality/size trade-off, higher is smaller
	Preset      string // encoder speed preset (e.g. veryfast)
	FPS         int    // output frame rate
	FastStart   bool   // web-streamable container layout
}

// RenderOptions configures a single render invocation.
type RenderOptions struct {
	Encoding   EncodingParams
	TimeoutSec int // wall clock bound; 0 means no timeout
}

// RenderOutcome is the successful result of a render.
type RenderOutcome struct {
	OutputPath string
	FileSize   int64
}

// VideoRenderer executes a composition graph into a playable video file.
// Cancelling the context terminates the backend process and removes any
// partial output before the call returns.
type VideoRenderer interface {
	Render(ctx context.Context, graph filtergraph.Graph, outputPath string, opts RenderOptions) (RenderOutcome, error)
}
