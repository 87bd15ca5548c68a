// Package render implements the render execution stage.
package render

import (
	"context"
	"fmt"

	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/ports"
)

// Stage hands the assembled graph to the rendering backend and maps the
// outcome. Failure classification happens inside the renderer; this stage
// only adds call context.
type Stage struct {
	renderer ports.VideoRenderer
	logger   ports.Logger
}

// NewStage creates a new render stage.
func NewStage(renderer ports.VideoRenderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("render"),
	}
}

// Execute runs the render and returns the output location and duration.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	result := pipeline.RenderResult{}

	if input.OutputPath == "" {
		return result, fmt.Errorf("%w: empty output path", pipeline.ErrInvalidJob)
	}
	if len(input.Graph.Images) == 0 {
		return result, fmt.Errorf("%w: empty composition graph", pipeline.ErrInvalidJob)
	}

	s.logger.Debug("Rendering %d segments to %s", len(input.Graph.Images), input.OutputPath)

	outcome, err := s.renderer.Render(ctx, input.Graph, input.OutputPath, input.Options)
	if err != nil {
		return result, fmt.Errorf("render: %w", err)
	}

	totalDuration := 0.0
	for _, img := range input.Graph.Images {
		totalDuration += img.DurationSec
	}

	result.OutputPath = outcome.OutputPath
	result.FileSize = outcome.FileSize
	result.DurationSec = totalDuration
	result.HasAudio = input.Graph.HasAudio()
	return result, nil
}
