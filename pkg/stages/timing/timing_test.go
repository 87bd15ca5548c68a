package timing

import (
	"context"
	"errors"
	"testing"

	"github.com/user/slidecast/pkg/pipeline"
)

func TestStage_Execute(t *testing.T) {
	stage := NewStage()

	plan, err := stage.Execute(context.Background(), pipeline.TimingInput{
		ImageCount:          4,
		DurationPerImageSec: 3,
		FPS:                 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.FramesPerImage != 90 {
		t.Errorf("expected 90 frames per image, got %d", plan.FramesPerImage)
	}
	if plan.TotalDurationSec != 12 {
		t.Errorf("expected total duration 12s, got %g", plan.TotalDurationSec)
	}
}

func TestStage_Execute_TotalDurationProperty(t *testing.T) {
	stage := NewStage()

	for count := 1; count <= 50; count++ {
		plan, err := stage.Execute(context.Background(), pipeline.DefaultTimingInput(count))
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", count, err)
		}
		want := float64(count) * pipeline.DefaultDurationPerImageSec
		if plan.TotalDurationSec != want {
			t.Errorf("count %d: expected total duration %g, got %g", count, want, plan.TotalDurationSec)
		}
	}
}

func TestStage_Execute_InvalidInputs(t *testing.T) {
	stage := NewStage()

	tests := []struct {
		name  string
		input pipeline.TimingInput
	}{
		{"zero images", pipeline.TimingInput{ImageCount: 0, DurationPerImageSec: 3, FPS: 30}},
		{"negative images", pipeline.TimingInput{ImageCount: -2, DurationPerImageSec: 3, FPS: 30}},
		{"zero duration", pipeline.TimingInput{ImageCount: 1, DurationPerImageSec: 0, FPS: 30}},
		{"zero fps", pipeline.TimingInput{ImageCount: 1, DurationPerImageSec: 3, FPS: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stage.Execute(context.Background(), tt.input)
			if !errors.Is(err, pipeline.ErrInvalidJob) {
				t.Errorf("expected ErrInvalidJob, got %v", err)
			}
		})
	}
}

func TestStage_Execute_Deterministic(t *testing.T) {
	stage := NewStage()
	input := pipeline.DefaultTimingInput(7)

	first, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("plans differ: %+v vs %+v", first, second)
	}
}
