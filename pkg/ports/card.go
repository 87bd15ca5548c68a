package ports

import (
	"image"

	"github.com/user/slidecast/pkg/filtergraph"
)

// CardRenderer draws an intro card image for a composition.
type CardRenderer interface {
	// RenderCard draws a card sized to canvas. Subtitle may be empty.
	RenderCard(title, subtitle string, canvas filtergraph.Dimension) (image.Image, error)
}
