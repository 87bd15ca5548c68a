package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveTimingJSON saves the computed timing plan as JSON.
	SaveTimingJSON(data []byte) error

	// SaveTransformsJSON saves the per-frame transform descriptors as JSON.
	SaveTransformsJSON(data []byte) error

	// SaveFilterScript saves the serialized backend filter script.
	SaveFilterScript(data []byte) error

	// SaveTitleCard saves the generated title card image.
	SaveTitleCard(img image.Image) error
}
