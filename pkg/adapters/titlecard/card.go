// Package titlecard renders an intro card image for a composition.
package titlecard

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/ports"
)

// Style controls the look of a rendered card.
type Style struct {
	Background   string  // hex color, e.g. "#101018"
	TitleColor   string  // hex color
	AccentColor  string  // hex color for the underline bar
	TitleSize    float64 // font size in points; 0 picks a size from the canvas height
	SubtitleSize float64
}

// DefaultStyle returns the stock dark card style.
func DefaultStyle() Style {
	return Style{
		Background:  "#101018",
		TitleColor:  "#f0f0f5",
		AccentColor: "#e94560",
	}
}

// Renderer implements ports.CardRenderer with a fixed style.
type Renderer struct {
	style Style
}

// NewRenderer creates a Renderer. A zero-value Style picks the default.
func NewRenderer(style Style) *Renderer {
	if style == (Style{}) {
		style = DefaultStyle()
	}
	return &Renderer{style: style}
}

// RenderCard draws a card sized to canvas.
func (r *Renderer) RenderCard(title, subtitle string, canvas filtergraph.Dimension) (image.Image, error) {
	return Render(title, subtitle, canvas, r.style)
}

// Ensure Renderer implements ports.CardRenderer
var _ ports.CardRenderer = (*Renderer)(nil)

// Render draws a title card sized to canvas. Subtitle may be empty.
func Render(title, subtitle string, canvas filtergraph.Dimension, style Style) (image.Image, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", canvas.Width, canvas.Height)
	}

	titleSize := style.TitleSize
	if titleSize <= 0 {
		titleSize = float64(canvas.Height) / 10
	}
	subtitleSize := style.SubtitleSize
	if subtitleSize <= 0 {
		subtitleSize = titleSize * 0.4
	}

	dc := gg.NewContext(canvas.Width, canvas.Height)
	dc.SetHexColor(style.Background)
	dc.Clear()

	w := float64(canvas.Width)
	h := float64(canvas.Height)

	titleFace, err := newFace(gobold.TTF, titleSize)
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	dc.SetFontFace(titleFace)
	dc.SetHexColor(style.TitleColor)

	maxWidth := w * 0.8
	dc.DrawStringWrapped(title, w/2, h*0.42, 0.5, 0.5, maxWidth, 1.3, gg.AlignCenter)

	// Accent bar under the title block
	barWidth := w * 0.18
	barY := h * 0.58
	dc.SetHexColor(style.AccentColor)
	dc.DrawRectangle(w/2-barWidth/2, barY, barWidth, 6)
	dc.Fill()

	if subtitle != "" {
		subFace, err := newFace(goregular.TTF, subtitleSize)
		if err != nil {
			return nil, fmt.Errorf("load subtitle font: %w", err)
		}
		dc.SetFontFace(subFace)
		dc.SetHexColor(style.TitleColor)
		dc.DrawStringAnchored(subtitle, w/2, h*0.68, 0.5, 0.5)
	}

	return dc.Image(), nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
}
