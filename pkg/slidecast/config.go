// Package slidecast provides a high-level API for composing slideshow videos.
package slidecast

import (
	"github.com/user/slidecast/pkg/orchestrator"
	"github.com/user/slidecast/pkg/pipeline"
)

// QualityPreset represents a video quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// QualitySettings contains quality parameters for video encoding.
type QualitySettings struct {
	VideoCRF int    // MP4 CRF value (0-51, lower is better)
	Preset   string // x264 speed preset
}

// GetQualitySettings returns quality settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{
			VideoCRF: 34,
			Preset:   "ultrafast",
		}
	case QualityHigh:
		return QualitySettings{
			VideoCRF: 22,
			Preset:   "medium",
		}
	default: // medium
		return QualitySettings{
			VideoCRF: 28,
			Preset:   "veryfast",
		}
	}
}

// Job identifies the inputs and output of one composition.
type Job struct {
	ImagePaths []string // stills in playback order
	AudioPath  string   // optional, empty means silent output
	OutputPath string
}

// Config represents the configuration for slidecast video generation.
type Config struct {
	// Video size
	Width  int // Output video width (default: 1280)
	Height int // Output video height (default: 720)

	// Timing
	DurationPerImageSec float64 // Seconds each still is shown
	FPS                 int     // Output frame rate

	// Color grading
	Saturation float64 // eq filter saturation (1.0 = unchanged)
	Contrast   float64 // eq filter contrast (1.0 = unchanged)

	// Motion
	ZoomStep          float64 // zoom-in increment per output frame
	ZoomMin           float64 // zoom lower bound
	ZoomMax           float64 // zoom upper bound
	JitterAmplitudePx float64 // handheld sway amplitude in pixels
	JitterXRate       float64 // horizontal sway frequency
	JitterYRate       float64 // vertical sway frequency

	// Title card
	TitleCard bool   // prepend an intro card segment
	Title     string // card title text
	Subtitle  string // card subtitle text, may be empty

	// Encoding
	VideoCRF int    // MP4 CRF value (0-51, lower is better)
	Preset   string // x264 speed preset

	// Timeout
	TimeoutSec int // Render timeout in seconds (default: 600)

	// Tools
	FFmpegPath  string // explicit ffmpeg binary, empty to discover
	FFprobePath string // explicit ffprobe binary, empty to discover

	// Storage
	WorkDir  string // intermediate files, empty uses the OS temp dir
	DebugDir string // non-empty enables debug artifact output
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with landscape preset defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: landscapeDefaults(),
	}
}

// NewPortraitConfigBuilder creates a new ConfigBuilder with portrait preset
// defaults, sized for vertical short-form video.
func NewPortraitConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: portraitDefaults(),
	}
}

// landscapeDefaults returns the landscape preset configuration.
func landscapeDefaults() Config {
	return Config{
		// Video size
		Width:  pipeline.DefaultCanvasWidth,
		Height: pipeline.DefaultCanvasHeight,

		// Timing
		DurationPerImageSec: pipeline.DefaultDurationPerImageSec,
		FPS:                 pipeline.DefaultFPS,

		// Color grading
		Saturation: pipeline.DefaultSaturation,
		Contrast:   pipeline.DefaultContrast,

		// Motion
		ZoomStep:          pipeline.DefaultZoomStep,
		ZoomMin:           pipeline.DefaultZoomMin,
		ZoomMax:           pipeline.DefaultZoomMax,
		JitterAmplitudePx: pipeline.DefaultJitterAmplitudePx,
		JitterXRate:       pipeline.DefaultJitterXRate,
		JitterYRate:       pipeline.DefaultJitterYRate,

		// Encoding (medium quality preset)
		VideoCRF: 28,
		Preset:   "veryfast",

		// Timeout
		TimeoutSec: 600,
	}
}

// portraitDefaults returns the portrait preset configuration.
func portraitDefaults() Config {
	cfg := landscapeDefaults()
	cfg.Width = pipeline.DefaultCanvasHeight
	cfg.Height = pipeline.DefaultCanvasWidth
	return cfg
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.FPS < 1 {
		cfg.FPS = pipeline.DefaultFPS
	}
	if cfg.DurationPerImageSec <= 0 {
		cfg.DurationPerImageSec = pipeline.DefaultDurationPerImageSec
	}
	if cfg.ZoomMin < 1.0 {
		cfg.ZoomMin = 1.0
	}
	if cfg.ZoomMax < cfg.ZoomMin {
		cfg.ZoomMax = cfg.ZoomMin
	}

	return cfg
}

// WithSize sets the output video dimensions.
func (b *ConfigBuilder) WithSize(width, height int) *ConfigBuilder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// WithDurationPerImage sets the seconds each still is shown.
func (b *ConfigBuilder) WithDurationPerImage(sec float64) *ConfigBuilder {
	b.config.DurationPerImageSec = sec
	return b
}

// WithFPS sets the output frame rate.
func (b *ConfigBuilder) WithFPS(fps int) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithSaturation sets the color grading saturation factor.
func (b *ConfigBuilder) WithSaturation(saturation float64) *ConfigBuilder {
	b.config.Saturation = saturation
	return b
}

// WithContrast sets the color grading contrast factor.
func (b *ConfigBuilder) WithContrast(contrast float64) *ConfigBuilder {
	b.config.Contrast = contrast
	return b
}

// WithZoom sets the zoom curve bounds and per-frame step.
func (b *ConfigBuilder) WithZoom(step, min, max float64) *ConfigBuilder {
	b.config.ZoomStep = step
	b.config.ZoomMin = min
	b.config.ZoomMax = max
	return b
}

// WithJitter sets the handheld sway amplitude and frequencies.
func (b *ConfigBuilder) WithJitter(amplitudePx, xRate, yRate float64) *ConfigBuilder {
	b.config.JitterAmplitudePx = amplitudePx
	b.config.JitterXRate = xRate
	b.config.JitterYRate = yRate
	return b
}

// WithTitleCard enables an intro card with the given texts.
func (b *ConfigBuilder) WithTitleCard(title, subtitle string) *ConfigBuilder {
	b.config.TitleCard = true
	b.config.Title = title
	b.config.Subtitle = subtitle
	return b
}

// WithVideoCRF sets the MP4 CRF value (0-51, lower is better).
func (b *ConfigBuilder) WithVideoCRF(crf int) *ConfigBuilder {
	b.config.VideoCRF = crf
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	settings := GetQualitySettings(preset)
	b.config.VideoCRF = settings.VideoCRF
	b.config.Preset = settings.Preset
	return b
}

// WithTimeoutSec sets the render timeout in seconds.
func (b *ConfigBuilder) WithTimeoutSec(sec int) *ConfigBuilder {
	b.config.TimeoutSec = sec
	return b
}

// WithFFmpegPath sets an explicit ffmpeg binary path.
func (b *ConfigBuilder) WithFFmpegPath(path string) *ConfigBuilder {
	b.config.FFmpegPath = path
	return b
}

// WithFFprobePath sets an explicit ffprobe binary path.
func (b *ConfigBuilder) WithFFprobePath(path string) *ConfigBuilder {
	b.config.FFprobePath = path
	return b
}

// WithWorkDir sets the directory for intermediate files.
func (b *ConfigBuilder) WithWorkDir(dir string) *ConfigBuilder {
	b.config.WorkDir = dir
	return b
}

// WithDebugDir enables debug artifact output to the given directory.
func (b *ConfigBuilder) WithDebugDir(dir string) *ConfigBuilder {
	b.config.DebugDir = dir
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config for the job.
func (c Config) ToOrchestratorConfig(job Job) orchestrator.Config {
	return orchestrator.Config{
		ImagePaths: job.ImagePaths,
		AudioPath:  job.AudioPath,
		OutputPath: job.OutputPath,

		DurationPerImageSec: c.DurationPerImageSec,
		FPS:                 c.FPS,

		CanvasWidth:  c.Width,
		CanvasHeight: c.Height,
		Saturation:   c.Saturation,
		Contrast:     c.Contrast,

		ZoomStep:          c.ZoomStep,
		ZoomMin:           c.ZoomMin,
		ZoomMax:           c.ZoomMax,
		JitterAmplitudePx: c.JitterAmplitudePx,
		JitterXRate:       c.JitterXRate,
		JitterYRate:       c.JitterYRate,

		TitleCardEnabled: c.TitleCard,
		Title:            c.Title,
		Subtitle:         c.Subtitle,

		VideoCRF:   c.VideoCRF,
		Preset:     c.Preset,
		TimeoutSec: c.TimeoutSec,

		WorkDir: c.WorkDir,
	}
}
