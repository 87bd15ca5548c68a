// Package mp4inspect provides utilities for validating generated MP4 files.
package mp4inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/slidecast/pkg/ports"
)

// Inspector implements ports.OutputInspector.
type Inspector struct{}

// NewInspector creates an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect reads the file and reports its duration and track layout.
func (i *Inspector) Inspect(path string) (ports.OutputInfo, error) {
	info, err := InspectFile(path)
	if err != nil {
		return ports.OutputInfo{}, err
	}
	return ports.OutputInfo{
		DurationSec: info.DurationSec,
		HasVideo:    info.HasVideo,
		HasAudio:    info.HasAudio,
		VideoCodec:  info.VideoCodec,
	}, nil
}

// Ensure Inspector implements ports.OutputInspector
var _ ports.OutputInspector = (*Inspector)(nil)

// Info summarizes the structure of an MP4 file.
type Info struct {
	DurationSec float64
	HasVideo    bool
	HasAudio    bool
	VideoCodec  string
}

// InspectFile reads an MP4 file and reports its duration and track layout.
func InspectFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return InspectReader(f)
}

// InspectReader inspects MP4 data from an io.ReadSeeker.
func InspectReader(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return Info{}, fmt.Errorf("no moov box found")
	}

	var info Info
	if moov.Mvhd != nil && moov.Mvhd.Timescale > 0 {
		info.DurationSec = float64(moov.Mvhd.Duration) / float64(moov.Mvhd.Timescale)
	}

	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
			continue
		}
		switch trak.Mdia.Hdlr.HandlerType {
		case "vide":
			info.HasVideo = true
			if codec := videoCodec(trak); codec != "" {
				info.VideoCodec = codec
			}
		case "soun":
			info.HasAudio = true
		}
	}

	if !info.HasVideo {
		return info, fmt.Errorf("no video track found")
	}
	return info, nil
}

func videoCodec(trak *mp4.TrakBox) string {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return ""
	}
	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return "h264"
		case "av01":
			return "av1"
		case "hvc1", "hev1":
			return "hevc"
		}
	}
	return ""
}
