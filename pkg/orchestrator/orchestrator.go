// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"path/filepath"

	"github.com/ideamans/go-l10n"

	"github.com/user/slidecast/pkg/adapters/ffmpegrender"
	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	ImagePaths []string
	AudioPath  string // empty means no audio track
	OutputPath string

	// Timing
	DurationPerImageSec float64
	FPS                 int

	// Canvas and color
	CanvasWidth  int
	CanvasHeight int
	Saturation   float64
	Contrast     float64

	// Motion
	ZoomStep          float64
	ZoomMin           float64
	ZoomMax           float64
	JitterAmplitudePx float64
	JitterXRate       float64
	JitterYRate       float64

	// Title card
	TitleCardEnabled bool
	Title            string
	Subtitle         string

	// Encoding
	VideoCRF   int
	Preset     string
	TimeoutSec int

	// WorkDir holds intermediate files. Empty uses the OS temp directory.
	WorkDir string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DurationPerImageSec: pipeline.DefaultDurationPerImageSec,
		FPS:                 pipeline.DefaultFPS,

		CanvasWidth:  pipeline.DefaultCanvasWidth,
		CanvasHeight: pipeline.DefaultCanvasHeight,
		Saturation:   pipeline.DefaultSaturation,
		Contrast:     pipeline.DefaultContrast,

		ZoomStep:          pipeline.DefaultZoomStep,
		ZoomMin:           pipeline.DefaultZoomMin,
		ZoomMax:           pipeline.DefaultZoomMax,
		JitterAmplitudePx: pipeline.DefaultJitterAmplitudePx,
		JitterXRate:       pipeline.DefaultJitterXRate,
		JitterYRate:       pipeline.DefaultJitterYRate,

		VideoCRF:   28,
		Preset:     "veryfast",
		TimeoutSec: 600,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	timingStage    pipeline.Stage[pipeline.TimingInput, pipeline.TimingPlan]
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.TransformResult]
	assembleStage  pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	renderStage    pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	cards          ports.CardRenderer
	inspector      ports.OutputInspector
	fs             ports.FileSystem
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	timingStage pipeline.Stage[pipeline.TimingInput, pipeline.TimingPlan],
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.TransformResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	cards ports.CardRenderer,
	inspector ports.OutputInspector,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		timingStage:    timingStage,
		transformStage: transformStage,
		assembleStage:  assembleStage,
		renderStage:    renderStage,
		cards:          cards,
		inspector:      inspector,
		fs:             fs,
		sink:           sink,
		logger:         logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	images := append([]string(nil), config.ImagePaths...)
	canvas := filtergraph.Dimension{Width: config.CanvasWidth, Height: config.CanvasHeight}

	// 1. Title card (optional), prepended as the first segment
	titleCardAdded := false
	if config.TitleCardEnabled {
		cardPath, err := o.renderTitleCard(config, canvas)
		if err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return RunResult{}, fmt.Errorf("title card: %w", err)
		}
		// The card's work directory lives exactly as long as the job.
		defer o.fs.RemoveAll(filepath.Dir(cardPath))
		images = append([]string{cardPath}, images...)
		titleCardAdded = true
	}

	// 2. Timing calculation
	o.logger.Info(l10n.T("Computing timing plan"))
	plan, err := o.timingStage.Execute(ctx, pipeline.TimingInput{
		ImageCount:          len(images),
		DurationPerImageSec: config.DurationPerImageSec,
		FPS:                 config.FPS,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("timing stage: %w", err)
	}
	o.logger.Info(l10n.F("Timing: %d images x %.1fs at %d fps (%.1fs total)",
		plan.ImageCount, plan.DurationPerImageSec, plan.FPS, plan.TotalDurationSec))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(plan, "", "  "); err == nil {
			o.sink.SaveTimingJSON(data)
		}
	}

	// 3. Per-frame transforms
	transforms, err := o.transformStage.Execute(ctx, o.buildTransformInput(config, images, plan, canvas))
	if err != nil {
		return RunResult{}, fmt.Errorf("transform stage: %w", err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(transforms.Descriptors, "", "  "); err == nil {
			o.sink.SaveTransformsJSON(data)
		}
	}

	// 4. Composition graph assembly
	var audio *pipeline.AudioSource
	if config.AudioPath != "" {
		audio = &pipeline.AudioSource{Path: config.AudioPath}
	}
	assembled, err := o.assembleStage.Execute(ctx, pipeline.AssembleInput{
		Descriptors: transforms.Descriptors,
		Audio:       audio,
		Plan:        plan,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("assemble stage: %w", err)
	}

	if o.sink.Enabled() {
		o.sink.SaveFilterScript([]byte(ffmpegrender.FilterScript(assembled.Graph)))
	}

	// 5. Render
	rendered, err := o.renderStage.Execute(ctx, pipeline.RenderInput{
		Graph:      assembled.Graph,
		OutputPath: config.OutputPath,
		Options:    o.buildRenderOptions(config),
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to render video: %s", err))
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}

	// 6. Output inspection. The container is the source of truth for
	// duration and track layout; the stage-computed values stay as a
	// fallback when inspection is unavailable.
	if o.inspector != nil {
		if info, err := o.inspector.Inspect(rendered.OutputPath); err == nil {
			if !info.HasVideo {
				return RunResult{}, fmt.Errorf("%w: output has no video track", pipeline.ErrRenderBackend)
			}
			if info.DurationSec > 0 {
				rendered.DurationSec = info.DurationSec
			}
			rendered.HasAudio = info.HasAudio
		} else {
			o.logger.Debug(l10n.F("Output inspection skipped: %s", err))
		}
	}

	o.logger.Info(l10n.F("Output saved to %s", rendered.OutputPath))
	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		OutputPath:     rendered.OutputPath,
		DurationSec:    rendered.DurationSec,
		FileSize:       rendered.FileSize,
		HasAudio:       rendered.HasAudio,
		ImageCount:     len(config.ImagePaths),
		TitleCardAdded: titleCardAdded,
	}, nil
}

// renderTitleCard draws the card, saves it to the work directory as PNG and
// returns the file path.
func (o *Orchestrator) renderTitleCard(config Config, canvas filtergraph.Dimension) (string, error) {
	o.logger.Info(l10n.T("Generating title card"))

	img, err := o.cards.RenderCard(config.Title, config.Subtitle, canvas)
	if err != nil {
		return "", err
	}

	if o.sink.Enabled() {
		o.sink.SaveTitleCard(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode title card: %w", err)
	}

	dir, err := o.fs.MkdirTemp(config.WorkDir, "slidecast-*")
	if err != nil {
		return "", fmt.Errorf("%w: create work dir: %v", pipeline.ErrStorage, err)
	}
	path := filepath.Join(dir, "titlecard.png")
	if err := o.fs.WriteFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("%w: write title card: %v", pipeline.ErrStorage, err)
	}

	o.logger.Info(l10n.F("Title card generated: %dx%d", canvas.Width, canvas.Height))
	return path, nil
}

func (o *Orchestrator) buildTransformInput(config Config, images []string, plan pipeline.TimingPlan, canvas filtergraph.Dimension) pipeline.TransformInput {
	frames := make([]pipeline.FrameSource, len(images))
	for i, path := range images {
		frames[i] = pipeline.FrameSource{Path: path, Index: i}
	}
	return pipeline.TransformInput{
		Frames:     frames,
		Plan:       plan,
		Canvas:     canvas,
		Saturation: config.Saturation,
		Contrast:   config.Contrast,
		Zoom: pipeline.ZoomParams{
			Step: config.ZoomStep,
			Min:  config.ZoomMin,
			Max:  config.ZoomMax,
		},
		Jitter: filtergraph.Jitter{
			AmplitudePx: config.JitterAmplitudePx,
			XRate:       config.JitterXRate,
			YRate:       config.JitterYRate,
		},
	}
}

func (o *Orchestrator) buildRenderOptions(config Config) ports.RenderOptions {
	enc := pipeline.DefaultEncodingParams(config.FPS)
	if config.VideoCRF > 0 {
		enc.CRF = config.VideoCRF
	}
	if config.Preset != "" {
		enc.Preset = config.Preset
	}
	return ports.RenderOptions{
		Encoding:   enc,
		TimeoutSec: config.TimeoutSec,
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	OutputPath     string
	DurationSec    float64
	FileSize       int64
	HasAudio       bool
	ImageCount     int // input stills, excluding any title card
	TitleCardAdded bool
}
