package filesink

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/slidecast/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem())

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveTimingJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`{"imageCount": 4}`)
	if err := sink.SaveTimingJSON(data); err != nil {
		t.Fatalf("SaveTimingJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "timing.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveTransformsJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`[{"index": 0}]`)
	if err := sink.SaveTransformsJSON(data); err != nil {
		t.Fatalf("SaveTransformsJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "transforms.json")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveFilterScript(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte("[0:v]scale=1280:720[v0]")
	if err := sink.SaveFilterScript(data); err != nil {
		t.Fatalf("SaveFilterScript failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "filter.txt")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveTitleCard(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	if err := sink.SaveTitleCard(img); err != nil {
		t.Fatalf("SaveTitleCard failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "titlecard.png")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}

	decoded, err := png.Decode(bytes.NewReader(saved))
	if err != nil {
		t.Fatalf("saved title card is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 9 {
		t.Errorf("unexpected decoded size %v", decoded.Bounds())
	}
}
