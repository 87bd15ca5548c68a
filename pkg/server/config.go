// Package server provides the HTTP API for video generation.
package server

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/slidecast/pkg/slidecast"
)

// Config represents the full configuration for the server.
type Config struct {
	// Network
	Addr    string `yaml:"addr"`
	BaseURL string `yaml:"base_url"` // external URL prefix; empty derives from the request

	// Storage
	DataDir  string `yaml:"data_dir"`  // uploads and rendered outputs
	DebugDir string `yaml:"debug_dir"` // non-empty enables debug artifacts

	// Admission control
	MaxConcurrentRenders int     `yaml:"max_concurrent_renders"`
	MaxMemoryPercent     float64 `yaml:"max_memory_percent"` // 0 disables the gate

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	MaxImages      int   `yaml:"max_images"`

	// Engine
	Preset              string  `yaml:"preset"`  // landscape or portrait
	Quality             string  `yaml:"quality"` // low, medium, high
	DurationPerImageSec float64 `yaml:"duration_per_image_sec"`
	FPS                 int     `yaml:"fps"`
	TitleCard           bool    `yaml:"title_card"`
	RenderTimeoutSec    int     `yaml:"render_timeout_sec"`

	// Audio policy: keep the generation service's suggested track when the
	// user did not upload audio.
	KeepGeneratedAudio bool `yaml:"keep_generated_audio"`

	// Tools
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Addr: ":5001",

		DataDir: "./uploads",

		MaxConcurrentRenders: 2,
		MaxMemoryPercent:     90,

		MaxUploadBytes: 64 << 20, // 64 MiB
		MaxImages:      10,

		Preset:              "landscape",
		Quality:             "medium",
		DurationPerImageSec: 3.0,
		FPS:                 30,
		RenderTimeoutSec:    600,

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// EngineConfig builds the composition settings this server renders with.
func (c Config) EngineConfig() slidecast.Config {
	var builder *slidecast.ConfigBuilder
	if c.Preset == "portrait" {
		builder = slidecast.NewPortraitConfigBuilder()
	} else {
		builder = slidecast.NewConfigBuilder()
	}

	builder.
		WithQualityPreset(slidecast.QualityPreset(c.Quality)).
		WithDurationPerImage(c.DurationPerImageSec).
		WithFPS(c.FPS).
		WithTimeoutSec(c.RenderTimeoutSec)

	if c.FFmpegPath != "" {
		builder.WithFFmpegPath(c.FFmpegPath)
	}
	if c.FFprobePath != "" {
		builder.WithFFprobePath(c.FFprobePath)
	}
	if c.DebugDir != "" {
		builder.WithDebugDir(c.DebugDir)
	}

	return builder.Build()
}
