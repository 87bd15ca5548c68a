package pollinations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/user/slidecast/pkg/adapters/logger"
	"github.com/user/slidecast/pkg/mocks"
	"github.com/user/slidecast/pkg/pipeline"
)

func newTestClient(baseURL string, fs *mocks.FileSystem) *Client {
	c := New(Config{BaseURL: baseURL}, fs, logger.NewNoop())
	c.seed = func() int { return 42 }
	return c
}

func TestGenerateScenes(t *testing.T) {
	c := newTestClient("https://img.example", mocks.NewFileSystem())

	plan, err := c.GenerateScenes(context.Background(), `a samurai saying "honor above all" in the rain`)
	if err != nil {
		t.Fatalf("GenerateScenes failed: %v", err)
	}

	if plan.Transcript != "honor above all" {
		t.Errorf("expected quoted dialogue as transcript, got %q", plan.Transcript)
	}
	if len(plan.ImageURLs) != 4 {
		t.Fatalf("expected 4 scene URLs, got %d", len(plan.ImageURLs))
	}

	for i, u := range plan.ImageURLs {
		if !strings.HasPrefix(u, "https://img.example/prompt/") {
			t.Errorf("URL %d has wrong base: %s", i, u)
		}
		if strings.Contains(u, "honor") {
			t.Errorf("URL %d leaks dialogue into image prompt: %s", i, u)
		}
		if !strings.Contains(u, "width=1024") || !strings.Contains(u, "height=576") {
			t.Errorf("URL %d missing dimensions: %s", i, u)
		}
		if !strings.Contains(u, "nologo=true") {
			t.Errorf("URL %d missing nologo: %s", i, u)
		}
	}

	// Seeds increment from the base so scenes stay stylistically related.
	if !strings.Contains(plan.ImageURLs[0], "seed=42") {
		t.Errorf("expected seed=42 in first URL: %s", plan.ImageURLs[0])
	}
	if !strings.Contains(plan.ImageURLs[3], "seed=45") {
		t.Errorf("expected seed=45 in last URL: %s", plan.ImageURLs[3])
	}
}

func TestGenerateScenes_SuggestsBackingTrack(t *testing.T) {
	c := newTestClient("https://img.example", mocks.NewFileSystem())

	plan, err := c.GenerateScenes(context.Background(), `a knight saying "for the realm"`)
	if err != nil {
		t.Fatalf("GenerateScenes failed: %v", err)
	}

	if plan.AudioURL != defaultSuggestedAudioURL {
		t.Errorf("expected default backing track suggestion, got %q", plan.AudioURL)
	}
}

func TestGenerateScenes_ConfiguredBackingTrack(t *testing.T) {
	c := New(Config{
		BaseURL:           "https://img.example",
		SuggestedAudioURL: "https://audio.example/theme.mp3",
	}, mocks.NewFileSystem(), logger.NewNoop())

	plan, err := c.GenerateScenes(context.Background(), "a castle at dawn")
	if err != nil {
		t.Fatalf("GenerateScenes failed: %v", err)
	}

	if plan.AudioURL != "https://audio.example/theme.mp3" {
		t.Errorf("expected configured backing track, got %q", plan.AudioURL)
	}
}

func TestGenerateScenes_NoDialogue(t *testing.T) {
	c := newTestClient("https://img.example", mocks.NewFileSystem())

	plan, err := c.GenerateScenes(context.Background(), "a castle on a hill")
	if err != nil {
		t.Fatalf("GenerateScenes failed: %v", err)
	}
	if plan.Transcript != defaultTranscript {
		t.Errorf("expected default transcript, got %q", plan.Transcript)
	}
}

func TestGenerateScenes_EmptyPrompt(t *testing.T) {
	c := newTestClient("https://img.example", mocks.NewFileSystem())

	_, err := c.GenerateScenes(context.Background(), "   ")
	if !errors.Is(err, pipeline.ErrInvalidJob) {
		t.Errorf("expected ErrInvalidJob, got %v", err)
	}
}

func TestFetchImages(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("jpegdata"))
	}))
	defer srv.Close()

	fs := mocks.NewFileSystem()
	c := newTestClient(srv.URL, fs)

	urls := []string{srv.URL + "/a.jpg", srv.URL + "/b.jpg", srv.URL + "/c.jpg"}
	paths, err := c.FetchImages(context.Background(), urls, "/work/images")
	if err != nil {
		t.Fatalf("FetchImages failed: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	if int(hits.Load()) != 3 {
		t.Errorf("expected 3 requests, got %d", hits.Load())
	}
	for i, p := range paths {
		data, ok := fs.GetFile(p)
		if !ok {
			t.Fatalf("image %d not written to %s", i, p)
		}
		if string(data) != "jpegdata" {
			t.Errorf("image %d has wrong content", i)
		}
		if !strings.HasPrefix(p, "/work/images/scene-") {
			t.Errorf("unexpected path %s", p)
		}
	}
}

func TestFetchImages_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, mocks.NewFileSystem())

	_, err := c.FetchImages(context.Background(), []string{srv.URL + "/a.jpg"}, "/work/images")
	if !errors.Is(err, pipeline.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchImages_Empty(t *testing.T) {
	c := newTestClient("https://img.example", mocks.NewFileSystem())

	_, err := c.FetchImages(context.Background(), nil, "/work/images")
	if !errors.Is(err, pipeline.ErrInvalidJob) {
		t.Errorf("expected ErrInvalidJob, got %v", err)
	}
}
