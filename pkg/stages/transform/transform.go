// Package transform implements the motion/color transform builder stage.
package transform

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Frame sources arrive in whatever format the user uploaded or the
	// generation service produced; register the common decoders so
	// validation accepts all of them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/ports"
)

// Stage builds one declarative transform descriptor per frame: scale-to-fit,
// centered padding, color adjustment, and an alternating pan/zoom motion.
// Alternating the zoom direction per index gives visual variety across a
// slideshow without per-image authoring; the sine/cosine jitter simulates
// handheld camera motion cheaply.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new transform stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("transform"),
	}
}

// Execute validates every frame source and returns descriptors in input
// order. An unreadable or undecodable image aborts the whole job.
func (s *Stage) Execute(ctx context.Context, input pipeline.TransformInput) (pipeline.TransformResult, error) {
	result := pipeline.TransformResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("%w: no frames", pipeline.ErrInvalidJob)
	}
	if input.Plan.FramesPerImage < 1 {
		return result, fmt.Errorf("%w: timing plan has no frames per image", pipeline.ErrInvalidJob)
	}
	s.logger.Debug("Building transforms for %d frames", len(input.Frames))

	descriptors := make([]pipeline.TransformDescriptor, 0, len(input.Frames))
	for _, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		width, height, err := s.probeImage(frame.Path)
		if err != nil {
			return result, fmt.Errorf("%w: frame %d (%s): %v", pipeline.ErrInvalidFrame, frame.Index, frame.Path, err)
		}
		s.logger.Debug("Frame %d: %dx%d, zoom %s", frame.Index, width, height, zoomDirection(frame.Index))

		descriptors = append(descriptors, buildDescriptor(frame, input))
	}

	result.Descriptors = descriptors
	return result, nil
}

// probeImage checks that the source exists and decodes as an image, without
// decoding the full pixel data.
func (s *Stage) probeImage(path string) (width, height int, err error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// buildDescriptor computes the pure-data transform for one frame.
func buildDescriptor(frame pipeline.FrameSource, input pipeline.TransformInput) pipeline.TransformDescriptor {
	return pipeline.TransformDescriptor{
		Index:      frame.Index,
		Source:     frame,
		Canvas:     input.Canvas,
		Saturation: input.Saturation,
		Contrast:   input.Contrast,
		Zoom: filtergraph.ZoomCurve{
			Direction: zoomDirection(frame.Index),
			Step:      input.Zoom.Step,
			Min:       input.Zoom.Min,
			Max:       input.Zoom.Max,
		},
		Jitter: input.Jitter,
		Frames: input.Plan.FramesPerImage,
		FPS:    input.Plan.FPS,
	}
}

// zoomDirection alternates per index: even frames zoom in, odd frames zoom
// out.
func zoomDirection(index int) filtergraph.ZoomDirection {
	if index%2 == 0 {
		return filtergraph.ZoomIn
	}
	return filtergraph.ZoomOut
}
