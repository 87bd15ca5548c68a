package mocks

import (
	"context"
	"sync"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/ports"
)

// RenderCall records a single invocation of VideoRenderer.Render.
type RenderCall struct {
	Graph      filtergraph.Graph
	OutputPath string
	Options    ports.RenderOptions
}

// VideoRenderer is a mock implementation of ports.VideoRenderer.
type VideoRenderer struct {
	mu sync.Mutex

	RenderFunc func(ctx context.Context, graph filtergraph.Graph, outputPath string, opts ports.RenderOptions) (ports.RenderOutcome, error)

	RenderCalls []RenderCall
}

func (m *VideoRenderer) Render(ctx context.Context, graph filtergraph.Graph, outputPath string, opts ports.RenderOptions) (ports.RenderOutcome, error) {
	m.mu.Lock()
	m.RenderCalls = append(m.RenderCalls, RenderCall{Graph: graph, OutputPath: outputPath, Options: opts})
	m.mu.Unlock()

	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, graph, outputPath, opts)
	}
	return ports.RenderOutcome{OutputPath: outputPath}, nil
}

var _ ports.VideoRenderer = (*VideoRenderer)(nil)
