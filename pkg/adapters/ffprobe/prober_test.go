package ffprobe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeProbe writes a stand-in ffprobe script that prints the given stdout.
func fakeProbe(t *testing.T, stdout string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake requires a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "ffprobe")
	script := "#!/bin/sh\nprintf '%s' '" + stdout + "'\nexit " + string(rune('0'+exitCode)) + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDuration(t *testing.T) {
	p := New(fakeProbe(t, "12.345000\n", 0))
	dur, err := p.Duration(context.Background(), "/in/track.mp3")
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if dur != 12.345 {
		t.Errorf("expected 12.345, got %v", dur)
	}
}

func TestDurationProbeFailure(t *testing.T) {
	p := New(fakeProbe(t, "", 1))
	if _, err := p.Duration(context.Background(), "/in/track.mp3"); err == nil {
		t.Error("expected error for failing probe")
	}
}

func TestDurationUnparsableOutput(t *testing.T) {
	p := New(fakeProbe(t, "N/A", 0))
	if _, err := p.Duration(context.Background(), "/in/track.mp3"); err == nil {
		t.Error("expected error for unparsable duration")
	}
}

func TestMissingBinary(t *testing.T) {
	p := New("/nonexistent/ffprobe")
	_, err := p.Duration(context.Background(), "/in/track.mp3")
	if !errors.Is(err, ErrFFprobeNotFound) {
		t.Errorf("expected ErrFFprobeNotFound, got %v", err)
	}
}
