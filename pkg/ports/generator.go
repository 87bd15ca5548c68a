package ports

import "context"

// ScenePlan is the upstream generation result for a prompt: a set of image
// URLs forming a scene sequence and the dialogue transcript extracted from
// the prompt.
type ScenePlan struct {
	ImageURLs  []string
	Transcript string
	AudioURL   string // suggested backing track; policy decides whether to use it
}

// SceneGenerator turns a text prompt into downloadable scene images and a
// transcript by calling an external generation service.
type SceneGenerator interface {
	// GenerateScenes requests scene images for the prompt.
	GenerateScenes(ctx context.Context, prompt string) (ScenePlan, error)

	// FetchImages downloads the given URLs into dir and returns the local
	// paths in the same order.
	FetchImages(ctx context.Context, urls []string, dir string) ([]string, error)
}
