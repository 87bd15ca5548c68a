package mocks

import (
	"image"
	"sync"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/ports"
)

// CardCall records a single invocation of CardRenderer.RenderCard.
type CardCall struct {
	Title    string
	Subtitle string
	Canvas   filtergraph.Dimension
}

// CardRenderer is a mock implementation of ports.CardRenderer.
type CardRenderer struct {
	mu sync.Mutex

	RenderCardFunc func(title, subtitle string, canvas filtergraph.Dimension) (image.Image, error)

	RenderCardCalls []CardCall
}

func (m *CardRenderer) RenderCard(title, subtitle string, canvas filtergraph.Dimension) (image.Image, error) {
	m.mu.Lock()
	m.RenderCardCalls = append(m.RenderCardCalls, CardCall{Title: title, Subtitle: subtitle, Canvas: canvas})
	m.mu.Unlock()

	if m.RenderCardFunc != nil {
		return m.RenderCardFunc(title, subtitle, canvas)
	}
	return image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height)), nil
}

var _ ports.CardRenderer = (*CardRenderer)(nil)
