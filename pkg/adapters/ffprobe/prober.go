// Package ffprobe reads media metadata using the ffprobe tool.
package ffprobe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/user/slidecast/pkg/ports"
)

// ErrFFprobeNotFound is returned when no ffprobe binary can be located.
var ErrFFprobeNotFound = errors.New("ffprobe: ffprobe not found")

// Prober implements ports.MediaProber with an external ffprobe process.
type Prober struct {
	ffprobePath string // explicit binary path; empty means discover

	once     sync.Once
	resolved string
	findErr  error
}

// New creates a new Prober. ffprobePath may be empty, in which case the
// binary is discovered from FFPROBE_PATH and then PATH on first use.
func New(ffprobePath string) *Prober {
	return &Prober{ffprobePath: ffprobePath}
}

// Duration returns the playable duration of the file in seconds.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	bin, err := p.find()
	if err != nil {
		return 0, err
	}

	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: parse duration: %w", path, err)
	}
	return dur, nil
}

func (p *Prober) find() (string, error) {
	p.once.Do(func() {
		if p.ffprobePath != "" {
			if _, err := os.Stat(p.ffprobePath); err != nil {
				p.findErr = fmt.Errorf("%w: custom path %s not found", ErrFFprobeNotFound, p.ffprobePath)
				return
			}
			p.resolved = p.ffprobePath
			return
		}
		if envPath := os.Getenv("FFPROBE_PATH"); envPath != "" {
			if _, err := os.Stat(envPath); err == nil {
				p.resolved = envPath
				return
			}
		}
		path, err := exec.LookPath("ffprobe")
		if err != nil {
			p.findErr = ErrFFprobeNotFound
			return
		}
		p.resolved = path
	})
	return p.resolved, p.findErr
}

// Ensure Prober implements ports.MediaProber
var _ ports.MediaProber = (*Prober)(nil)
