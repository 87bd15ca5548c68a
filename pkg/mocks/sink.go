package mocks

import (
	"image"
	"sync"

	"github.com/user/slidecast/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	TimingJSON     []byte
	TransformsJSON []byte
	FilterScript   []byte
	TitleCard      image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveTimingJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TimingJSON = data
	return nil
}

func (m *DebugSink) SaveTransformsJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TransformsJSON = data
	return nil
}

func (m *DebugSink) SaveFilterScript(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FilterScript = data
	return nil
}

func (m *DebugSink) SaveTitleCard(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TitleCard = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
