// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/slidecast/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink writing under baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveTimingJSON saves the computed timing plan as JSON.
func (s *Sink) SaveTimingJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "timing.json")
	return s.fs.WriteFile(path, data)
}

// SaveTransformsJSON saves the per-frame transform descriptors as JSON.
func (s *Sink) SaveTransformsJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "transforms.json")
	return s.fs.WriteFile(path, data)
}

// SaveFilterScript saves the serialized backend filter script.
func (s *Sink) SaveFilterScript(data []byte) error {
	path := filepath.Join(s.baseDir, "filter.txt")
	return s.fs.WriteFile(path, data)
}

// SaveTitleCard saves the generated title card image as PNG.
func (s *Sink) SaveTitleCard(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode title card: %w", err)
	}
	path := filepath.Join(s.baseDir, "titlecard.png")
	return s.fs.WriteFile(path, buf.Bytes())
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
