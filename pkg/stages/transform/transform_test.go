package transform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/user/slidecast/pkg/adapters/logger"
	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/mocks"
	"github.com/user/slidecast/pkg/pipeline"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testInput(frames []pipeline.FrameSource) pipeline.TransformInput {
	plan := pipeline.TimingPlan{
		ImageCount:          len(frames),
		DurationPerImageSec: 3,
		FPS:                 30,
		FramesPerImage:      90,
		TotalDurationSec:    float64(len(frames)) * 3,
	}
	return pipeline.DefaultTransformInput(frames, plan)
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	data := pngBytes(t, 64, 48)
	frames := make([]pipeline.FrameSource, 4)
	for i := range frames {
		path := fmt.Sprintf("/in/frame-%d.png", i)
		fs.WriteFile(path, data)
		frames[i] = pipeline.FrameSource{Path: path, Index: i}
	}

	stage := NewStage(fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), testInput(frames))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Descriptors) != 4 {
		t.Fatalf("expected 4 descriptors, got %d", len(result.Descriptors))
	}

	for i, d := range result.Descriptors {
		if d.Index != i {
			t.Errorf("descriptor %d: expected index %d, got %d", i, i, d.Index)
		}
		wantDir := filtergraph.ZoomIn
		if i%2 == 1 {
			wantDir = filtergraph.ZoomOut
		}
		if d.Zoom.Direction != wantDir {
			t.Errorf("descriptor %d: expected zoom %s, got %s", i, wantDir, d.Zoom.Direction)
		}
		if d.Frames != 90 {
			t.Errorf("descriptor %d: expected 90 frames, got %d", i, d.Frames)
		}
		if d.Canvas.Width != 1280 || d.Canvas.Height != 720 {
			t.Errorf("descriptor %d: unexpected canvas %dx%d", i, d.Canvas.Width, d.Canvas.Height)
		}
	}
}

func TestStage_Execute_ZoomBounds(t *testing.T) {
	fs := mocks.NewFileSystem()
	data := pngBytes(t, 32, 32)
	frames := make([]pipeline.FrameSource, 6)
	for i := range frames {
		path := fmt.Sprintf("/in/f%d.png", i)
		fs.WriteFile(path, data)
		frames[i] = pipeline.FrameSource{Path: path, Index: i}
	}

	stage := NewStage(fs, logger.NewNoop())
	result, err := stage.Execute(context.Background(), testInput(frames))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Zoom must stay within [min, max] at every frame of the segment,
	// including the final one, for both alternation branches.
	for _, d := range result.Descriptors {
		for n := 0; n <= d.Frames; n++ {
			z := d.Zoom.At(n, d.Frames)
			if z < d.Zoom.Min || z > d.Zoom.Max {
				t.Fatalf("descriptor %d: zoom %g at frame %d outside [%g, %g]",
					d.Index, z, n, d.Zoom.Min, d.Zoom.Max)
			}
		}
	}
}

func TestStage_Execute_EmptyFrames(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), testInput(nil))
	if !errors.Is(err, pipeline.ErrInvalidJob) {
		t.Errorf("expected ErrInvalidJob, got %v", err)
	}
}

func TestStage_Execute_MissingFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())

	frames := []pipeline.FrameSource{{Path: "/in/gone.png", Index: 0}}
	_, err := stage.Execute(context.Background(), testInput(frames))
	if !errors.Is(err, pipeline.ErrInvalidFrame) {
		t.Errorf("expected ErrInvalidFrame, got %v", err)
	}
}

func TestStage_Execute_CorruptFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/in/bad.png", []byte("not an image"))
	stage := NewStage(fs, logger.NewNoop())

	frames := []pipeline.FrameSource{{Path: "/in/bad.png", Index: 0}}
	_, err := stage.Execute(context.Background(), testInput(frames))
	if !errors.Is(err, pipeline.ErrInvalidFrame) {
		t.Errorf("expected ErrInvalidFrame, got %v", err)
	}
}

func TestStage_Execute_Deterministic(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("/in/a.png", pngBytes(t, 16, 16))
	fs.WriteFile("/in/b.png", pngBytes(t, 16, 16))
	stage := NewStage(fs, logger.NewNoop())

	frames := []pipeline.FrameSource{
		{Path: "/in/a.png", Index: 0},
		{Path: "/in/b.png", Index: 1},
	}
	input := testInput(frames)

	first, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first.Descriptors {
		if first.Descriptors[i] != second.Descriptors[i] {
			t.Errorf("descriptor %d differs between runs", i)
		}
	}
}
