package filtergraph

import "math"

// At evaluates the zoom factor at output frame n of a segment that is total
// frames long. ZoomIn accumulates Step per frame and clamps at Max, so
// zoom(n) = min(Min + Step*n, Max). ZoomOut decays linearly from Max and
// reaches approximately Min at the end of the segment.
func (c ZoomCurve) At(n, total int) float64 {
	if total <= 0 {
		return c.Min
	}
	switch c.Direction {
	case ZoomOut:
		z := c.Max - (c.Max-c.Min)*float64(n)/float64(total)
		return clamp(z, c.Min, c.Max)
	default:
		return clamp(c.Min+c.Step*float64(n), c.Min, c.Max)
	}
}

// OffsetAt evaluates the jitter pan offset at elapsed time t seconds within
// a segment.
func (j Jitter) OffsetAt(t float64) (x, y float64) {
	return j.AmplitudePx * math.Sin(t*j.XRate), j.AmplitudePx * math.Cos(t*j.YRate)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
