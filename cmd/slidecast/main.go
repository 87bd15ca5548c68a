// Package main provides the CLI entry point for slidecast.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/slidecast/pkg/adapters/logger"
	"github.com/user/slidecast/pkg/adapters/osfilesystem"
	"github.com/user/slidecast/pkg/adapters/pollinations"
	"github.com/user/slidecast/pkg/ports"
	"github.com/user/slidecast/pkg/server"
	"github.com/user/slidecast/pkg/slidecast"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Compose ComposeCmd `cmd:"" help:"Compose still images and audio into an MP4 video."`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP generation server."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ComposeCmd defines the compose subcommand.
type ComposeCmd struct {
	// Required arguments
	Images []string `arg:"" help:"Paths of still images, in playback order."`
	Output string   `short:"o" required:"" help:"Output MP4 file path."`

	// Soundtrack
	Audio string `short:"a" help:"Audio file attached to the video (trimmed to the video length)."`

	// Preset
	Preset  string `short:"p" default:"landscape" enum:"landscape,portrait" help:"Canvas preset (landscape or portrait)."`
	Quality string `short:"q" default:"medium" enum:"low,medium,high" help:"Quality preset (low, medium, high)."`

	// Canvas dimensions
	Width  *int `short:"W" help:"Output video width (default: 1280)."`
	Height *int `short:"H" help:"Output video height (default: 720)."`

	// Timing options
	Duration *float64 `short:"t" help:"Seconds each image is shown (default: 3.0)."`
	FPS      *int     `help:"Output frame rate (default: 30)."`

	// Grading options
	Saturation *float64 `help:"Color saturation multiplier (default: 1.3)."`
	Contrast   *float64 `help:"Contrast multiplier (default: 1.1)."`

	// Motion options
	ZoomStep *float64 `help:"Zoom increment per frame (default: 0.005)."`
	ZoomMax  *float64 `help:"Maximum zoom factor (default: 2.0)."`
	Jitter   *float64 `help:"Handheld jitter amplitude in pixels (default: 5)."`

	// Title card options
	Title    string `help:"Prepend a title card with this text."`
	Subtitle string `help:"Subtitle shown under the title card text."`

	// Encoding options
	CRF     *int `help:"Video CRF value (lower is better, overrides quality preset)."`
	Timeout *int `help:"Render timeout in seconds (default: 600)."`

	// External tools
	FFmpegPath  string `help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then system default)."`
	FFprobePath string `help:"Path to ffprobe executable (falls back to FFPROBE_PATH env, then system default)."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ServeCmd defines the serve subcommand.
type ServeCmd struct {
	Config string `short:"c" help:"Path to YAML configuration file."`

	Addr     string `help:"Listen address (overrides config file)."`
	DataDir  string `help:"Directory for uploads and rendered videos (overrides config file)."`
	LogLevel string `short:"l" default:"" enum:",debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("slidecast"),
		kong.Description("Compose slideshow videos from still images and audio."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the compose command.
func (cmd *ComposeCmd) Run() error {
	cfg := cmd.buildConfig()

	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	job := slidecast.Job{
		ImagePaths: cmd.Images,
		AudioPath:  cmd.Audio,
		OutputPath: cmd.Output,
	}

	log.Info(l10n.F("Composing %d images into %s (%s preset)...", len(cmd.Images), cmd.Output, cmd.Preset))

	if _, err := slidecast.Compose(ctx, job, cfg, log); err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", cmd.Output))
	return nil
}

// buildConfig creates a Config from preset and CLI overrides.
func (cmd *ComposeCmd) buildConfig() slidecast.Config {
	var builder *slidecast.ConfigBuilder
	switch cmd.Preset {
	case "portrait":
		builder = slidecast.NewPortraitConfigBuilder()
	default:
		builder = slidecast.NewConfigBuilder()
	}

	builder.WithQualityPreset(slidecast.QualityPreset(cmd.Quality))

	if cmd.Width != nil && cmd.Height != nil {
		builder.WithSize(*cmd.Width, *cmd.Height)
	}
	if cmd.Duration != nil {
		builder.WithDurationPerImage(*cmd.Duration)
	}
	if cmd.FPS != nil {
		builder.WithFPS(*cmd.FPS)
	}
	if cmd.Saturation != nil {
		builder.WithSaturation(*cmd.Saturation)
	}
	if cmd.Contrast != nil {
		builder.WithContrast(*cmd.Contrast)
	}
	if cmd.ZoomStep != nil || cmd.ZoomMax != nil {
		step, max := 0.005, 2.0
		if cmd.ZoomStep != nil {
			step = *cmd.ZoomStep
		}
		if cmd.ZoomMax != nil {
			max = *cmd.ZoomMax
		}
		builder.WithZoom(step, 1.0, max)
	}
	if cmd.Jitter != nil {
		builder.WithJitter(*cmd.Jitter, 20, 15)
	}
	if cmd.Title != "" {
		builder.WithTitleCard(cmd.Title, cmd.Subtitle)
	}
	if cmd.CRF != nil {
		builder.WithVideoCRF(*cmd.CRF)
	}
	if cmd.Timeout != nil {
		builder.WithTimeoutSec(*cmd.Timeout)
	}
	if cmd.FFmpegPath != "" {
		builder.WithFFmpegPath(cmd.FFmpegPath)
	}
	if cmd.FFprobePath != "" {
		builder.WithFFprobePath(cmd.FFprobePath)
	}
	if cmd.Debug {
		builder.WithDebugDir(cmd.DebugDir)
	}

	return builder.Build()
}

// Run executes the serve command.
func (cmd *ServeCmd) Run() error {
	cfg := server.Defaults()
	if cmd.Config != "" {
		loaded, err := server.LoadFromFile(cmd.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}
	if cmd.DataDir != "" {
		cfg.DataDir = cmd.DataDir
	}
	if cmd.LogLevel != "" {
		cfg.LogLevel = cmd.LogLevel
	}

	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	fs := osfilesystem.New()
	generator := pollinations.New(pollinations.Config{}, fs, log)

	composer, err := slidecast.NewOrchestrator(cfg.EngineConfig(), log)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	srv := server.New(cfg, composer, generator, fs, log)

	// Stop the listener on SIGINT/SIGTERM, letting in-flight renders
	// drain through Shutdown.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Warn(l10n.T("Interrupted, shutting down..."))
		return srv.Shutdown(context.Background())
	}
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("slidecast (Go) version %s", version))
	return nil
}
