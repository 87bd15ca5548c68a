package ports

import "context"

// OutputInfo summarizes a rendered container.
type OutputInfo struct {
	DurationSec float64
	HasVideo    bool
	HasAudio    bool
	VideoCodec  string
}

// OutputInspector validates a rendered output file and reports its layout.
type OutputInspector interface {
	Inspect(path string) (OutputInfo, error)
}

// MediaProber reads metadata from a media file without decoding it fully.
type MediaProber interface {
	// Duration returns the playable duration of the file in seconds.
	Duration(ctx context.Context, path string) (float64, error)
}
