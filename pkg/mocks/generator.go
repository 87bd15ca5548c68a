package mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/user/slidecast/pkg/ports"
)

// SceneGenerator is a mock implementation of ports.SceneGenerator.
type SceneGenerator struct {
	mu sync.Mutex

	GenerateScenesFunc func(ctx context.Context, prompt string) (ports.ScenePlan, error)
	FetchImagesFunc    func(ctx context.Context, urls []string, dir string) ([]string, error)

	GenerateScenesCalls []string
	FetchImagesCalls    [][]string
}

func (m *SceneGenerator) GenerateScenes(ctx context.Context, prompt string) (ports.ScenePlan, error) {
	m.mu.Lock()
	m.GenerateScenesCalls = append(m.GenerateScenesCalls, prompt)
	m.mu.Unlock()

	if m.GenerateScenesFunc != nil {
		return m.GenerateScenesFunc(ctx, prompt)
	}
	return ports.ScenePlan{}, nil
}

func (m *SceneGenerator) FetchImages(ctx context.Context, urls []string, dir string) ([]string, error) {
	m.mu.Lock()
	m.FetchImagesCalls = append(m.FetchImagesCalls, urls)
	m.mu.Unlock()

	if m.FetchImagesFunc != nil {
		return m.FetchImagesFunc(ctx, urls, dir)
	}
	paths := make([]string, len(urls))
	for i := range urls {
		paths[i] = filepath.Join(dir, fmt.Sprintf("scene_%d.jpg", i))
	}
	return paths, nil
}

var _ ports.SceneGenerator = (*SceneGenerator)(nil)
