package slidecast

import (
	"context"
	"fmt"

	"github.com/user/slidecast/pkg/adapters/ffmpegrender"
	"github.com/user/slidecast/pkg/adapters/ffprobe"
	"github.com/user/slidecast/pkg/adapters/filesink"
	"github.com/user/slidecast/pkg/adapters/mp4inspect"
	"github.com/user/slidecast/pkg/adapters/nullsink"
	"github.com/user/slidecast/pkg/adapters/osfilesystem"
	"github.com/user/slidecast/pkg/adapters/titlecard"
	"github.com/user/slidecast/pkg/orchestrator"
	"github.com/user/slidecast/pkg/ports"
	"github.com/user/slidecast/pkg/stages/assemble"
	"github.com/user/slidecast/pkg/stages/render"
	"github.com/user/slidecast/pkg/stages/timing"
	"github.com/user/slidecast/pkg/stages/transform"
)

// NewOrchestrator wires the production adapters and stages for cfg.
func NewOrchestrator(cfg Config, log ports.Logger) (*orchestrator.Orchestrator, error) {
	fs := osfilesystem.New()

	var sink ports.DebugSink
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	renderer := ffmpegrender.New(cfg.FFmpegPath, log)
	prober := ffprobe.New(cfg.FFprobePath)
	cards := titlecard.NewRenderer(titlecard.DefaultStyle())

	return orchestrator.New(
		timing.NewStage(),
		transform.NewStage(fs, log),
		assemble.NewStage(prober, log),
		render.NewStage(renderer, log),
		cards,
		mp4inspect.NewInspector(),
		fs,
		sink,
		log,
	), nil
}

// Compose builds and runs the pipeline for a single job.
func Compose(ctx context.Context, job Job, cfg Config, log ports.Logger) (orchestrator.RunResult, error) {
	orch, err := NewOrchestrator(cfg, log)
	if err != nil {
		return orchestrator.RunResult{}, err
	}
	return orch.Run(ctx, cfg.ToOrchestratorConfig(job))
}
