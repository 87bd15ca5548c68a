// Package timing implements the frame timing calculation stage.
package timing

import (
	"context"
	"fmt"

	"github.com/user/slidecast/pkg/pipeline"
)

// Stage derives the timing plan for a job: frames per image, total duration.
// It has no dependencies and no side effects.
type Stage struct{}

// NewStage creates a new timing stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute computes the timing plan. Identical inputs always yield identical
// plans.
func (s *Stage) Execute(ctx context.Context, input pipeline.TimingInput) (pipeline.TimingPlan, error) {
	if input.ImageCount < 1 {
		return pipeline.TimingPlan{}, fmt.Errorf("%w: image count %d, need at least 1", pipeline.ErrInvalidJob, input.ImageCount)
	}
	if input.DurationPerImageSec <= 0 {
		return pipeline.TimingPlan{}, fmt.Errorf("%w: duration per image %.2fs, must be positive", pipeline.ErrInvalidJob, input.DurationPerImageSec)
	}
	if input.FPS < 1 {
		return pipeline.TimingPlan{}, fmt.Errorf("%w: fps %d, must be positive", pipeline.ErrInvalidJob, input.FPS)
	}

	return pipeline.TimingPlan{
		ImageCount:          input.ImageCount,
		DurationPerImageSec: input.DurationPerImageSec,
		FPS:                 input.FPS,
		FramesPerImage:      int(input.DurationPerImageSec * float64(input.FPS)),
		TotalDurationSec:    float64(input.ImageCount) * input.DurationPerImageSec,
	}, nil
}
