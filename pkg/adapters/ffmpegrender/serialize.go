package ffmpegrender

import (
	"fmt"
	"strings"

	"github.com/user/slidecast/pkg/filtergraph"
	"github.com/user/slidecast/pkg/ports"
)

// This file is the only place that knows ffmpeg syntax. The graph itself is
// pure data; everything here folds it into a filter_complex script and an
// argument list.

// FilterScript serializes the per-chain filters and the concat stage into a
// filter_complex expression. Chain i reads [i:v] and writes [vi]; the concat
// combines every [vi] in chain order into [v].
func FilterScript(graph filtergraph.Graph) string {
	var b strings.Builder

	for _, chain := range graph.Chains {
		fmt.Fprintf(&b, "[%d:v]", chain.InputIndex)
		for fi, f := range chain.Filters {
			if fi > 0 {
				b.WriteByte(',')
			}
			writeFilter(&b, f)
		}
		fmt.Fprintf(&b, "[v%d];", chain.InputIndex)
	}

	for _, chain := range graph.Chains {
		fmt.Fprintf(&b, "[v%d]", chain.InputIndex)
	}
	fmt.Fprintf(&b, "concat=n=%d:v=1:a=0[v]", len(graph.Chains))

	return b.String()
}

func writeFilter(b *strings.Builder, f filtergraph.Filter) {
	switch f := f.(type) {
	case filtergraph.ScaleFit:
		fmt.Fprintf(b, "scale=%d:%d:force_original_aspect_ratio=decrease", f.Target.Width, f.Target.Height)
	case filtergraph.PadCenter:
		fmt.Fprintf(b, "pad=%d:%d:(ow-iw)/2:(oh-ih)/2", f.Target.Width, f.Target.Height)
	case filtergraph.ColorAdjust:
		fmt.Fprintf(b, "eq=saturation=%g:contrast=%g", f.Saturation, f.Contrast)
	case filtergraph.PanZoom:
		fmt.Fprintf(b, "zoompan=z='%s':d=%d:fps=%d:x='%s':y='%s':s=%dx%d",
			zoomExpr(f.Zoom, f.Frames), f.Frames, f.FPS,
			panExpr("iw", "sin", f.Jitter.XRate, f.Jitter.AmplitudePx),
			panExpr("ih", "cos", f.Jitter.YRate, f.Jitter.AmplitudePx),
			f.Canvas.Width, f.Canvas.Height)
	case filtergraph.SetSquarePixels:
		b.WriteString("setsar=1")
	}
}

// zoomExpr renders the zoom curve as a zoompan expression. ZoomIn is the
// accumulating clamp min(zoom+step,max); ZoomOut decays linearly from max
// toward min over the segment, driven by the output frame counter.
func zoomExpr(z filtergraph.ZoomCurve, frames int) string {
	if z.Direction == filtergraph.ZoomOut {
		return fmt.Sprintf("%g-%g*on/%d", z.Max, z.Max-z.Min, frames)
	}
	return fmt.Sprintf("min(zoom+%g,%g)", z.Step, z.Max)
}

// panExpr centers the crop window and offsets it by the jitter oscillation,
// so the window never exceeds the scaled image bounds.
func panExpr(dim, fn string, rate, amp float64) string {
	return fmt.Sprintf("%s/2-(%s/zoom/2)+%s(time*%g)*%g", dim, dim, fn, rate, amp)
}

// Args builds the full ffmpeg invocation for the graph: looped image inputs
// in order, the optional trimmed audio input last, the filter script, stream
// mapping and output encoding.
func Args(graph filtergraph.Graph, outputPath string, enc ports.EncodingParams) []string {
	args := []string{"-y"}

	for _, img := range graph.Images {
		args = append(args,
			"-loop", "1",
			"-framerate", fmt.Sprintf("%d", img.FPS),
			"-t", formatSeconds(img.DurationSec),
			"-i", img.Path,
		)
	}

	audioIndex := -1
	if graph.Audio != nil {
		audioIndex = len(graph.Images)
		args = append(args, "-t", formatSeconds(graph.Audio.TrimSec), "-i", graph.Audio.Path)
	}

	args = append(args, "-filter_complex", FilterScript(graph), "-map", "[v]")

	if audioIndex >= 0 {
		args = append(args, "-map", fmt.Sprintf("%d:a", audioIndex), "-shortest")
	}

	args = append(args,
		"-c:v", enc.Codec,
		"-pix_fmt", enc.PixelFormat,
		"-r", fmt.Sprintf("%d", enc.FPS),
		"-crf", fmt.Sprintf("%d", enc.CRF),
		"-preset", enc.Preset,
	)
	if enc.FastStart {
		args = append(args, "-movflags", "+faststart")
	}

	return append(args, outputPath)
}

func formatSeconds(sec float64) string {
	return fmt.Sprintf("%.3f", sec)
}
