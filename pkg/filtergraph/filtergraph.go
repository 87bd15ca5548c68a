// Package filtergraph defines the typed intermediate representation for a
// video composition. A Graph describes inputs, per-input filter chains, the
// concat stage and the optional audio attachment as pure data. Backend
// adapters own the serialization into their invocation syntax, so the
// transform math stays independent of any particular rendering tool.
package filtergraph

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// ImageLoopInput is a still image looped into a video stream for a fixed
// duration at a fixed input frame rate.
type ImageLoopInput struct {
	Path        string
	FPS         int
	DurationSec float64
}

// AudioInput is the optional audio track. TrimSec bounds how much of the
// source is read; the assembler sets it to the shorter of the audio and the
// total video duration.
type AudioInput struct {
	Path    string
	TrimSec float64
}

// Filter is a single typed stage in a per-input chain. The set of
// implementations is closed; serializers switch over the concrete types.
type Filter interface {
	isFilter()
}

// ScaleFit scales the input to fit within the target dimensions while
// preserving the aspect ratio. It never crops.
type ScaleFit struct {
	Target Dimension
}

// PadCenter pads the input up to the target dimensions with centered
// letterboxing.
type PadCenter struct {
	Target Dimension
}

// ColorAdjust applies saturation and contrast multipliers.
type ColorAdjust struct {
	Saturation float64
	Contrast   float64
}

// ZoomDirection selects the motion of a zoom curve.
type ZoomDirection int

const (
	// ZoomIn increases zoom by Step per output frame, clamped to Max.
	ZoomIn ZoomDirection = iota
	// ZoomOut decays linearly from Max toward Min over the segment.
	ZoomOut
)

// String returns the direction name.
func (d ZoomDirection) String() string {
	if d == ZoomOut {
		return "out"
	}
	return "in"
}

// ZoomCurve describes how the zoom factor evolves over a segment.
type ZoomCurve struct {
	Direction ZoomDirection
	Step      float64 // per-frame increment for ZoomIn
	Min       float64 // lower zoom bound
	Max       float64 // upper zoom bound
}

// Jitter describes the periodic pan offset applied around the centered crop
// window. Offsets follow amp*sin(t*xRate) horizontally and amp*cos(t*yRate)
// vertically, where t is elapsed seconds within the segment.
type Jitter struct {
	AmplitudePx float64
	XRate       float64
	YRate       float64
}

// PanZoom animates a segment with a zoom curve and jitter pan, producing
// Frames output frames at FPS on a canvas of the given size.
type PanZoom struct {
	Zoom   ZoomCurve
	Jitter Jitter
	Frames int
	FPS    int
	Canvas Dimension
}

// SetSquarePixels normalizes the sample aspect ratio to 1:1 so concatenated
// segments agree on pixel geometry.
type SetSquarePixels struct{}

func (ScaleFit) isFilter()        {}
func (PadCenter) isFilter()       {}
func (ColorAdjust) isFilter()     {}
func (PanZoom) isFilter()         {}
func (SetSquarePixels) isFilter() {}

// Chain is the ordered filter list applied to one video input.
type Chain struct {
	InputIndex int
	Filters    []Filter
}

// Graph is a complete composition: ordered image inputs, one chain per input,
// a concat of every chain in input order, and an optional audio attachment.
// A Graph is immutable once assembled.
type Graph struct {
	Images []ImageLoopInput
	Chains []Chain
	Audio  *AudioInput
}

// HasAudio reports whether the graph attaches an audio track.
func (g Graph) HasAudio() bool {
	return g.Audio != nil
}
