package assemble

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/user/slidecast/pkg/adapters/logger"
	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/mocks"
	"github.com/user/slidecast/pkg/pipeline"
)

func testPlan(count int) pipeline.TimingPlan {
	return pipeline.TimingPlan{
		ImageCount:          count,
		DurationPerImageSec: 3,
		FPS:                 30,
		FramesPerImage:      90,
		TotalDurationSec:    float64(count) * 3,
	}
}

func testDescriptors(count int) []pipeline.TransformDescriptor {
	canvas := filtergraph.Dimension{Width: 1280, Height: 720}
	descriptors := make([]pipeline.TransformDescriptor, count)
	for i := range descriptors {
		dir := filtergraph.ZoomIn
		if i%2 == 1 {
			dir = filtergraph.ZoomOut
		}
		descriptors[i] = pipeline.TransformDescriptor{
			Index:      i,
			Source:     pipeline.FrameSource{Path: fmt.Sprintf("/in/f%d.png", i), Index: i},
			Canvas:     canvas,
			Saturation: 1.3,
			Contrast:   1.1,
			Zoom:       filtergraph.ZoomCurve{Direction: dir, Step: 0.005, Min: 1.0, Max: 2.0},
			Jitter:     filtergraph.Jitter{AmplitudePx: 5, XRate: 20, YRate: 15},
			Frames:     90,
			FPS:        30,
		}
	}
	return descriptors
}

func TestStage_Execute_OrderPreserved(t *testing.T) {
	stage := NewStage(&mocks.MediaProber{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Descriptors: testDescriptors(4),
		Plan:        testPlan(4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	graph := result.Graph
	if len(graph.Images) != 4 || len(graph.Chains) != 4 {
		t.Fatalf("expected 4 inputs and 4 chains, got %d and %d", len(graph.Images), len(graph.Chains))
	}
	for i, img := range graph.Images {
		want := fmt.Sprintf("/in/f%d.png", i)
		if img.Path != want {
			t.Errorf("input %d: expected %s, got %s", i, want, img.Path)
		}
		if graph.Chains[i].InputIndex != i {
			t.Errorf("chain %d: expected input index %d, got %d", i, i, graph.Chains[i].InputIndex)
		}
	}
	if graph.HasAudio() {
		t.Error("expected no audio attachment")
	}
}

func TestStage_Execute_ChainShape(t *testing.T) {
	stage := NewStage(&mocks.MediaProber{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Descriptors: testDescriptors(1),
		Plan:        testPlan(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One-frame jobs still get a full chain and go through concat.
	chain := result.Graph.Chains[0]
	if len(chain.Filters) != 5 {
		t.Fatalf("expected 5 filters, got %d", len(chain.Filters))
	}
	if _, ok := chain.Filters[0].(filtergraph.ScaleFit); !ok {
		t.Errorf("filter 0: expected ScaleFit, got %T", chain.Filters[0])
	}
	if _, ok := chain.Filters[1].(filtergraph.PadCenter); !ok {
		t.Errorf("filter 1: expected PadCenter, got %T", chain.Filters[1])
	}
	if _, ok := chain.Filters[2].(filtergraph.ColorAdjust); !ok {
		t.Errorf("filter 2: expected ColorAdjust, got %T", chain.Filters[2])
	}
	if _, ok := chain.Filters[3].(filtergraph.PanZoom); !ok {
		t.Errorf("filter 3: expected PanZoom, got %T", chain.Filters[3])
	}
	if _, ok := chain.Filters[4].(filtergraph.SetSquarePixels); !ok {
		t.Errorf("filter 4: expected SetSquarePixels, got %T", chain.Filters[4])
	}
}

func TestStage_Execute_AudioTrimmedToVideo(t *testing.T) {
	stage := NewStage(&mocks.MediaProber{}, logger.NewNoop())

	// 4 images x 3s = 12s video, 20s audio: audio trimmed to 12s.
	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Descriptors: testDescriptors(4),
		Audio:       &pipeline.AudioSource{Path: "/in/track.mp3", DurationSec: 20},
		Plan:        testPlan(4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Graph.HasAudio() {
		t.Fatal("expected audio attachment")
	}
	if result.Graph.Audio.TrimSec != 12 {
		t.Errorf("expected audio trim 12s, got %g", result.Graph.Audio.TrimSec)
	}
}

func TestStage_Execute_ShortAudioKept(t *testing.T) {
	stage := NewStage(&mocks.MediaProber{}, logger.NewNoop())

	// 5s audio against 12s video: audio keeps its own length, video is
	// never trimmed to match.
	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Descriptors: testDescriptors(4),
		Audio:       &pipeline.AudioSource{Path: "/in/track.mp3", DurationSec: 5},
		Plan:        testPlan(4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Graph.Audio.TrimSec != 5 {
		t.Errorf("expected audio trim 5s, got %g", result.Graph.Audio.TrimSec)
	}
}

func TestStage_Execute_ProbesUnknownAudioDuration(t *testing.T) {
	prober := &mocks.MediaProber{
		DurationFunc: func(ctx context.Context, path string) (float64, error) {
			return 7.5, nil
		},
	}
	stage := NewStage(prober, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Descriptors: testDescriptors(4),
		Audio:       &pipeline.AudioSource{Path: "/in/track.mp3"},
		Plan:        testPlan(4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prober.DurationCalls) != 1 || prober.DurationCalls[0] != "/in/track.mp3" {
		t.Errorf("expected one probe of /in/track.mp3, got %v", prober.DurationCalls)
	}
	if result.Graph.Audio.TrimSec != 7.5 {
		t.Errorf("expected audio trim 7.5s, got %g", result.Graph.Audio.TrimSec)
	}
}

func TestStage_Execute_UnprobeableAudio(t *testing.T) {
	prober := &mocks.MediaProber{
		DurationFunc: func(ctx context.Context, path string) (float64, error) {
			return 0, errors.New("no such file")
		},
	}
	stage := NewStage(prober, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Descriptors: testDescriptors(1),
		Audio:       &pipeline.AudioSource{Path: "/in/gone.mp3"},
		Plan:        testPlan(1),
	})
	if !errors.Is(err, pipeline.ErrInvalidJob) {
		t.Errorf("expected ErrInvalidJob, got %v", err)
	}
}

func TestStage_Execute_EmptyDescriptors(t *testing.T) {
	stage := NewStage(&mocks.MediaProber{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.AssembleInput{Plan: testPlan(0)})
	if !errors.Is(err, pipeline.ErrInvalidJob) {
		t.Errorf("expected ErrInvalidJob, got %v", err)
	}
}
