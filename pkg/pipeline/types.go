package pipeline

import (
	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/ports"
)

// Reference engine constants. These are defaults, not hardwired behavior:
// every one of them arrives at the stages through the input structs below.
const (
	DefaultDurationPerImageSec = 3.0
	DefaultFPS                 = 30
	DefaultCanvasWidth         = 1280
	DefaultCanvasHeight        = 720
	DefaultSaturation          = 1.3
	DefaultContrast            = 1.1
	DefaultZoomStep            = 0.005
	DefaultZoomMin             = 1.0
	DefaultZoomMax             = 2.0
	DefaultJitterAmplitudePx   = 5.0
	DefaultJitterXRate         = 20.0
	DefaultJitterYRate         = 15.0
)

// =============================================================================
// Common Types
// =============================================================================

// FrameSource is one still image in the sequence. Position matters: it
// determines motion alternation and concat order.
type FrameSource struct {
	Path  string
	Index int
}

// AudioSource is the optional audio track, at most one per job.
// DurationSec is probed before assembly.
type AudioSource struct {
	Path        string
	DurationSec float64
}

// =============================================================================
// Timing Stage Types
// =============================================================================

// TimingInput contains parameters for timing calculation.
type TimingInput struct {
	ImageCount          int
	DurationPerImageSec float64
	FPS                 int
}

// DefaultTimingInput returns TimingInput with default values for the given
// image count.
func DefaultTimingInput(imageCount int) TimingInput {
	return TimingInput{
		ImageCount:          imageCount,
		DurationPerImageSec: DefaultDurationPerImageSec,
		FPS:                 DefaultFPS,
	}
}

// TimingPlan is the derived frame timing for a job. Identical inputs always
// yield an identical plan.
type TimingPlan struct {
	ImageCount          int
	DurationPerImageSec float64
	FPS                 int
	FramesPerImage      int
	TotalDurationSec    float64
}

// =============================================================================
// Transform Stage Types
// =============================================================================

// TransformInput contains parameters for building per-frame transforms.
type TransformInput struct {
	Frames     []FrameSource
	Plan       TimingPlan
	Canvas     filtergraph.Dimension
	Saturation float64
	Contrast   float64
	Zoom       ZoomParams
	Jitter     filtergraph.Jitter
}

// ZoomParams bounds the alternating zoom curves.
type ZoomParams struct {
	Step float64
	Min  float64
	Max  float64
}

// DefaultTransformInput returns TransformInput with default motion and color
// parameters for the given frames and plan.
func DefaultTransformInput(frames []FrameSource, plan TimingPlan) TransformInput {
	return TransformInput{
		Frames:     frames,
		Plan:       plan,
		Canvas:     filtergraph.Dimension{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		Saturation: DefaultSaturation,
		Contrast:   DefaultContrast,
		Zoom: ZoomParams{
			Step: DefaultZoomStep,
			Min:  DefaultZoomMin,
			Max:  DefaultZoomMax,
		},
		Jitter: filtergraph.Jitter{
			AmplitudePx: DefaultJitterAmplitudePx,
			XRate:       DefaultJitterXRate,
			YRate:       DefaultJitterYRate,
		},
	}
}

// TransformDescriptor is the declarative visual transform for one frame.
// It is pure data computed once per frame and never mutated.
type TransformDescriptor struct {
	Index      int
	Source     FrameSource
	Canvas     filtergraph.Dimension
	Saturation float64
	Contrast   float64
	Zoom       filtergraph.ZoomCurve
	Jitter     filtergraph.Jitter
	Frames     int // output frames in this segment
	FPS        int
}

// TransformResult contains the descriptors in input order.
type TransformResult struct {
	Descriptors []TransformDescriptor
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput contains parameters for composition graph assembly.
type AssembleInput struct {
	Descriptors []TransformDescriptor
	Audio       *AudioSource // nil when the output has no audio track
	Plan        TimingPlan
}

// AssembleResult contains the assembled composition graph.
type AssembleResult struct {
	Graph filtergraph.Graph
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains parameters for executing a render.
type RenderInput struct {
	Graph      filtergraph.Graph
	OutputPath string
	Options    ports.RenderOptions
}

// DefaultEncodingParams returns the reference output encoding: H.264 in a
// web-streamable container, favoring small files and fast turnaround.
func DefaultEncodingParams(fps int) ports.EncodingParams {
	return ports.EncodingParams{
		Codec:       "libx264",
		PixelFormat: "yuv420p",
		CRF:         28,
		Preset:      "veryfast",
		FPS:         fps,
		FastStart:   true,
	}
}

// RenderResult contains the rendered output.
type RenderResult struct {
	OutputPath  string
	DurationSec float64
	FileSize    int64
	HasAudio    bool
}
