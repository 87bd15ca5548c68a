package mocks

import (
	"fmt"
	"sync"

	"github.com/user/slidecast/pkg/ports"
)

// OutputInspector is a mock implementation of ports.OutputInspector.
type OutputInspector struct {
	mu sync.Mutex

	InspectFunc func(path string) (ports.OutputInfo, error)

	InspectCalls []string
}

func (m *OutputInspector) Inspect(path string) (ports.OutputInfo, error) {
	m.mu.Lock()
	m.InspectCalls = append(m.InspectCalls, path)
	m.mu.Unlock()

	if m.InspectFunc != nil {
		return m.InspectFunc(path)
	}
	return ports.OutputInfo{}, fmt.Errorf("file not found: %s", path)
}

var _ ports.OutputInspector = (*OutputInspector)(nil)
