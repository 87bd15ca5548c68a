// Package assemble implements the composition graph assembly stage.
package assemble

import (
	"context"
	"fmt"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/ports"
)

// Stage turns transform descriptors into one immutable composition graph:
// a labeled chain per frame, a concat of every chain in input order, and an
// optional audio attachment trimmed to the shorter of the audio and the
// video. Video length is authoritative; it is never trimmed to match audio.
type Stage struct {
	prober ports.MediaProber
	logger ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(prober ports.MediaProber, logger ports.Logger) *Stage {
	return &Stage{
		prober: prober,
		logger: logger.WithComponent("assemble"),
	}
}

// Execute assembles the graph. A single-frame job still goes through the
// concat stage so one-frame and multi-frame paths share output parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	result := pipeline.AssembleResult{}

	if len(input.Descriptors) == 0 {
		return result, fmt.Errorf("%w: no transform descriptors", pipeline.ErrInvalidJob)
	}
	s.logger.Debug("Assembling filter graph")

	graph := filtergraph.Graph{
		Images: make([]filtergraph.ImageLoopInput, 0, len(input.Descriptors)),
		Chains: make([]filtergraph.Chain, 0, len(input.Descriptors)),
	}

	for i, d := range input.Descriptors {
		graph.Images = append(graph.Images, filtergraph.ImageLoopInput{
			Path:        d.Source.Path,
			FPS:         d.FPS,
			DurationSec: input.Plan.DurationPerImageSec,
		})
		graph.Chains = append(graph.Chains, filtergraph.Chain{
			InputIndex: i,
			Filters: []filtergraph.Filter{
				filtergraph.ScaleFit{Target: d.Canvas},
				filtergraph.PadCenter{Target: d.Canvas},
				filtergraph.ColorAdjust{Saturation: d.Saturation, Contrast: d.Contrast},
				filtergraph.PanZoom{
					Zoom:   d.Zoom,
					Jitter: d.Jitter,
					Frames: d.Frames,
					FPS:    d.FPS,
					Canvas: d.Canvas,
				},
				filtergraph.SetSquarePixels{},
			},
		})
	}

	if input.Audio != nil {
		trim, err := s.audioTrim(ctx, *input.Audio, input.Plan)
		if err != nil {
			return result, err
		}
		graph.Audio = &filtergraph.AudioInput{
			Path:    input.Audio.Path,
			TrimSec: trim,
		}
		s.logger.Debug("Audio attached: %s, trimmed to %.2fs", input.Audio.Path, trim)
	}

	result.Graph = graph
	return result, nil
}

// audioTrim returns min(audio duration, total video duration), probing the
// audio file when the caller did not supply its duration.
func (s *Stage) audioTrim(ctx context.Context, audio pipeline.AudioSource, plan pipeline.TimingPlan) (float64, error) {
	dur := audio.DurationSec
	if dur <= 0 {
		s.logger.Debug("Probing audio duration: %s", audio.Path)
		probed, err := s.prober.Duration(ctx, audio.Path)
		if err != nil {
			return 0, fmt.Errorf("%w: probe audio %s: %v", pipeline.ErrInvalidJob, audio.Path, err)
		}
		dur = probed
	}
	if dur < plan.TotalDurationSec {
		return dur, nil
	}
	return plan.TotalDurationSec, nil
}
