package mocks

import (
	"context"
	"sync"

	"github.com/user/slidecast/pkg/ports"
)

// MediaProber is a mock implementation of ports.MediaProber.
type MediaProber struct {
	mu sync.Mutex

	DurationFunc func(ctx context.Context, path string) (float64, error)

	DurationCalls []string
}

func (m *MediaProber) Duration(ctx context.Context, path string) (float64, error) {
	m.mu.Lock()
	m.DurationCalls = append(m.DurationCalls, path)
	m.mu.Unlock()

	if m.DurationFunc != nil {
		return m.DurationFunc(ctx, path)
	}
	return 0, nil
}

var _ ports.MediaProber = (*MediaProber)(nil)
