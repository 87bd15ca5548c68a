// Package ffmpegrender executes composition graphs with an external ffmpeg
// process.
package ffmpegrender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/ports"
)

// Renderer implements ports.VideoRenderer by launching ffmpeg as an isolated
// child process. Each Render call is one job with the lifecycle
// NotStarted -> Running -> Succeeded/Failed; cancellation and timeout both
// terminate the child and delete partial output before returning.
type Renderer struct {
	ffmpegPath string // explicit binary path; empty means discover
	logger     ports.Logger
}

// New creates a new Renderer. ffmpegPath may be empty, in which case the
// binary is discovered per FindFFmpeg at render time.
func New(ffmpegPath string, logger ports.Logger) *Renderer {
	return &Renderer{
		ffmpegPath: ffmpegPath,
		logger:     logger.WithComponent("ffmpeg"),
	}
}

// job tracks the lifecycle state of one render. Transitions are logged so
// the process lifecycle is observable from the outside.
type job struct {
	mu     sync.Mutex
	state  ports.RenderState
	logger ports.Logger
}

func (j *job) to(s ports.RenderState) {
	j.mu.Lock()
	prev := j.state
	j.state = s
	j.mu.Unlock()
	j.logger.Debug("Render state: %s -> %s", prev, s)
}

// Render executes the graph into outputPath.
func (r *Renderer) Render(ctx context.Context, graph filtergraph.Graph, outputPath string, opts ports.RenderOptions) (ports.RenderOutcome, error) {
	outcome := ports.RenderOutcome{}
	j := &job{state: ports.RenderNotStarted, logger: r.logger}

	if len(graph.Images) == 0 {
		return outcome, fmt.Errorf("%w: %v", pipeline.ErrInvalidJob, ErrEmptyGraph)
	}

	ffmpegPath, err := FindFFmpeg(r.ffmpegPath)
	if err != nil {
		j.to(ports.RenderFailed)
		return outcome, fmt.Errorf("%w: %v", pipeline.ErrRenderBackend, err)
	}

	if err := ensureWritable(outputPath); err != nil {
		j.to(ports.RenderFailed)
		return outcome, fmt.Errorf("%w: output %s: %v", pipeline.ErrStorage, outputPath, err)
	}

	if opts.TimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeoutSec)*time.Second)
		defer cancel()
	}

	args := Args(graph, outputPath, opts.Encoding)
	r.logger.Debug("Launching %s %s", ffmpegPath, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	cmd.Stderr = &stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		j.to(ports.RenderFailed)
		return outcome, fmt.Errorf("%w: launch ffmpeg: %v", pipeline.ErrRenderBackend, err)
	}
	j.to(ports.RenderRunning)

	err = cmd.Wait()
	if err != nil {
		j.to(ports.RenderFailed)
		r.removePartial(outputPath)
		// Full diagnostics stay server-side; the returned error carries a
		// sanitized summary only.
		r.logger.Debug("ffmpeg stderr: %s", stderr.String())
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				r.logger.Warn("Render timed out after %ds", opts.TimeoutSec)
				return outcome, fmt.Errorf("%w: %v after %ds", pipeline.ErrRenderBackend, ErrTimeout, opts.TimeoutSec)
			}
			return outcome, fmt.Errorf("render cancelled: %w", ctxErr)
		}
		return outcome, fmt.Errorf("%w: ffmpeg: %v: %s", pipeline.ErrRenderBackend, err, SummarizeStderr(stderr.String()))
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		j.to(ports.RenderFailed)
		return outcome, fmt.Errorf("%w: output missing after render: %v", pipeline.ErrStorage, err)
	}

	j.to(ports.RenderSucceeded)
	r.logger.Debug("Rendered %d bytes in %.1fs", info.Size(), time.Since(started).Seconds())
	outcome.OutputPath = outputPath
	outcome.FileSize = info.Size()
	return outcome, nil
}

// ensureWritable creates the output directory and verifies a file can be
// created in it.
func ensureWritable(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// removePartial deletes whatever the failed process left at outputPath.
func (r *Renderer) removePartial(outputPath string) {
	if _, err := os.Stat(outputPath); err == nil {
		r.logger.Debug("Removing partial output %s", outputPath)
		os.Remove(outputPath)
	}
}

// SummarizeStderr reduces backend diagnostics to their last lines with
// filesystem paths elided, suitable for user-facing error messages.
func SummarizeStderr(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	keep := 3
	if len(lines) < keep {
		keep = len(lines)
	}
	summary := make([]string, 0, keep)
	for _, line := range lines[len(lines)-keep:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		summary = append(summary, elidePaths(line))
	}
	if len(summary) == 0 {
		return "no diagnostic output"
	}
	return strings.Join(summary, "; ")
}

// elidePaths replaces absolute path tokens with their base name.
func elidePaths(line string) string {
	fields := strings.Fields(line)
	for i, f := range fields {
		trimmed := strings.Trim(f, ":'\"")
		if strings.HasPrefix(trimmed, "/") && len(trimmed) > 1 {
			fields[i] = strings.Replace(f, trimmed, filepath.Base(trimmed), 1)
		}
	}
	return strings.Join(fields, " ")
}

// Ensure Renderer implements ports.VideoRenderer
var _ ports.VideoRenderer = (*Renderer)(nil)
