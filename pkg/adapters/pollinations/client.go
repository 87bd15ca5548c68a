// Package pollinations provides a scene generation client backed by the
// pollinations.ai image service.
package pollinations

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/ports"
)

const (
	defaultBaseURL = "https://image.pollinations.ai"

	// defaultTranscript is used when the prompt contains no quoted dialogue.
	defaultTranscript = "I am ready to face my destiny."

	// defaultSuggestedAudioURL is the backing track suggested with every
	// generated scene set. The server decides whether to surface it.
	defaultSuggestedAudioURL = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"

	// stylePrefix anchors the visual style across all scenes of a prompt.
	stylePrefix = "anime style, masterpiece, best quality, 8k, cinematic lighting, detailed character design"

	imageWidth  = 1024
	imageHeight = 576

	maxConcurrentFetches = 4
)

// sceneAngles describe the camera treatment of each generated scene. Seeds
// increment from a shared base so the scenes read as one sequence.
var sceneAngles = []string{
	"wide angle establishing shot, cinematic composition",
	"medium shot, dynamic action pose",
	"close up, detailed expression, dramatic lighting",
	"dynamic angle, intense atmosphere, movie still",
}

var dialogueRe = regexp.MustCompile(`"([^"]*)"`)

// Client implements ports.SceneGenerator against pollinations.ai.
type Client struct {
	baseURL    string
	audioURL   string
	httpClient *http.Client
	fs         ports.FileSystem
	logger     ports.Logger

	// seed returns the base seed for a scene set. Overridable in tests.
	seed func() int
}

// Config carries optional Client settings.
type Config struct {
	BaseURL string

	// SuggestedAudioURL replaces the default backing track suggestion.
	SuggestedAudioURL string

	HTTPClient *http.Client
}

// New creates a Client. Zero-value Config fields fall back to defaults.
func New(cfg Config, fs ports.FileSystem, logger ports.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	audioURL := cfg.SuggestedAudioURL
	if audioURL == "" {
		audioURL = defaultSuggestedAudioURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		audioURL:   audioURL,
		httpClient: httpClient,
		fs:         fs,
		logger:     logger.WithComponent("pollinations"),
		seed:       func() int { return rand.Intn(1000000) },
	}
}

// GenerateScenes derives a transcript and a set of scene image URLs from the
// prompt. Quoted dialogue becomes the transcript and is stripped from the
// image prompt.
func (c *Client) GenerateScenes(ctx context.Context, prompt string) (ports.ScenePlan, error) {
	if strings.TrimSpace(prompt) == "" {
		return ports.ScenePlan{}, fmt.Errorf("%w: empty prompt", pipeline.ErrInvalidJob)
	}

	c.logger.Info("Requesting scenes for prompt (%d chars)", len(prompt))

	transcript := defaultTranscript
	if m := dialogueRe.FindStringSubmatch(prompt); m != nil && m[1] != "" {
		transcript = m[1]
	}

	imagePrompt := dialogueRe.ReplaceAllString(prompt, "")
	imagePrompt = strings.ReplaceAll(imagePrompt, "saying", "")
	imagePrompt = strings.ReplaceAll(imagePrompt, "says", "")
	imagePrompt = strings.TrimSpace(imagePrompt)

	baseSeed := c.seed()
	urls := make([]string, len(sceneAngles))
	for i, angle := range sceneAngles {
		full := fmt.Sprintf("%s, %s, %s", stylePrefix, imagePrompt, angle)
		urls[i] = fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&seed=%d&nologo=true",
			c.baseURL, url.PathEscape(full), imageWidth, imageHeight, baseSeed+i)
	}

	return ports.ScenePlan{
		ImageURLs:  urls,
		Transcript: transcript,
		AudioURL:   c.audioURL,
	}, nil
}

// FetchImages downloads the URLs into dir concurrently and returns local
// paths in the same order as the input.
func (c *Client) FetchImages(ctx context.Context, urls []string, dir string) ([]string, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: no image URLs", pipeline.ErrInvalidJob)
	}

	c.logger.Info("Downloading %d scene images", len(urls))

	if err := c.fs.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", pipeline.ErrStorage, dir, err)
	}

	batch := uuid.NewString()
	paths := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, u := range urls {
		g.Go(func() error {
			path := filepath.Join(dir, fmt.Sprintf("scene-%s-%d.jpg", batch, i))
			if err := c.fetchOne(gctx, u, path); err != nil {
				return err
			}
			paths[i] = path
			c.logger.Debug("Downloaded %s", filepath.Base(path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (c *Client) fetchOne(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", pipeline.ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetch image: %v", pipeline.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: fetch image: status %d", pipeline.ErrUpstream, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read image body: %v", pipeline.ErrUpstream, err)
	}

	if err := c.fs.WriteFile(dest, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", pipeline.ErrStorage, dest, err)
	}
	return nil
}

// Ensure Client implements ports.SceneGenerator
var _ ports.SceneGenerator = (*Client)(nil)
