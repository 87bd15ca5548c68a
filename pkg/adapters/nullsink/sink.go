// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/slidecast/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards output.
func (s *Sink) Enabled() bool { return false }

func (s *Sink) SaveTimingJSON(data []byte) error     { return nil }
func (s *Sink) SaveTransformsJSON(data []byte) error { return nil }
func (s *Sink) SaveFilterScript(data []byte) error   { return nil }
func (s *Sink) SaveTitleCard(img image.Image) error  { return nil }

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
