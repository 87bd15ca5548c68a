package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ideamans/go-l10n"

	"github.com/user/slidecast/pkg/pipeline"
	"github.com/user/slidecast/pkg/slidecast"
)

type generateData struct {
	Video      string  `json:"video"`
	Transcript string  `json:"transcript"`
	Audio      *string `json:"audio"`
}

type generateResponse struct {
	Status string       `json:"status"`
	Data   generateData `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	prompt := strings.TrimSpace(r.FormValue("prompt"))
	imageFiles := r.MultipartForm.File["images"]
	audioFiles := r.MultipartForm.File["audio"]

	if prompt == "" && len(imageFiles) == 0 {
		s.respondError(w, http.StatusBadRequest, "Please provide a prompt or upload images.")
		return
	}
	if len(imageFiles) > s.cfg.MaxImages {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("at most %d images allowed", s.cfg.MaxImages))
		return
	}
	if len(audioFiles) > 1 {
		s.respondError(w, http.StatusBadRequest, "at most one audio file allowed")
		return
	}

	// Admission control: memory headroom first, then a render slot.
	if used, stop := s.memoryPressure(); stop {
		s.logger.Warn(l10n.F("Low memory (%.1f%% used), rejecting request", used))
		s.respondError(w, http.StatusServiceUnavailable, "server is under memory pressure, try again later")
		return
	}
	if !s.tryAcquire() {
		s.logger.Warn(l10n.T("Server busy, rejecting request"))
		s.respondError(w, http.StatusServiceUnavailable, "server is busy, try again later")
		return
	}
	defer s.release()

	ctx := r.Context()
	jobID := uuid.NewString()

	audioPath := ""
	audioName := ""
	if len(audioFiles) == 1 {
		path, name, err := s.saveUpload(audioFiles[0])
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, "failed to store uploaded audio")
			return
		}
		audioPath, audioName = path, name
	}

	var imagePaths []string
	transcript := ""
	generatedAudioURL := ""

	// Input stills are job-scoped intermediates; only the rendered video
	// and any audio stay behind for serving.
	defer func() {
		for _, p := range imagePaths {
			s.fs.Remove(p)
		}
	}()

	if len(imageFiles) > 0 {
		for _, fh := range imageFiles {
			path, _, err := s.saveUpload(fh)
			if err != nil {
				s.respondError(w, http.StatusInternalServerError, "failed to store uploaded image")
				return
			}
			imagePaths = append(imagePaths, path)
		}
		transcript = prompt
	} else {
		plan, err := s.generator.GenerateScenes(ctx, prompt)
		if err != nil {
			s.respondPipelineError(w, jobID, err)
			return
		}
		transcript = plan.Transcript

		imagePaths, err = s.generator.FetchImages(ctx, plan.ImageURLs, s.cfg.DataDir)
		if err != nil {
			s.logger.Error(l10n.F("Failed to fetch images: %s", err))
			s.respondPipelineError(w, jobID, err)
			return
		}

		// Suggested backing tracks are dropped unless the policy keeps
		// them; user-uploaded audio always wins.
		if audioPath == "" && s.cfg.KeepGeneratedAudio {
			generatedAudioURL = plan.AudioURL
		}
	}

	outputName := "video-" + jobID + ".mp4"
	job := slidecast.Job{
		ImagePaths: imagePaths,
		AudioPath:  audioPath,
		OutputPath: filepath.Join(s.cfg.DataDir, outputName),
	}

	engineCfg := s.engine
	if s.cfg.TitleCard && transcript != "" {
		engineCfg.TitleCard = true
		engineCfg.Title = transcript
	}

	result, err := s.composer.Run(ctx, engineCfg.ToOrchestratorConfig(job))
	if err != nil {
		s.logger.Error(l10n.F("Generation %s failed: %s", jobID, err))
		s.respondPipelineError(w, jobID, err)
		return
	}

	s.logger.Info(l10n.F("Generation %s completed in %.1fs", jobID, time.Since(started).Seconds()))

	var audioURL *string
	switch {
	case audioName != "":
		u := s.baseURL(r) + "/uploads/" + audioName
		audioURL = &u
	case generatedAudioURL != "":
		audioURL = &generatedAudioURL
	}

	s.respondJSON(w, http.StatusOK, generateResponse{
		Status: "success",
		Data: generateData{
			Video:      s.baseURL(r) + "/uploads/" + filepath.Base(result.OutputPath),
			Transcript: transcript,
			Audio:      audioURL,
		},
	})
}

// saveUpload stores a multipart file under the data directory with a UUID
// name preserving the original extension. Returns the path and file name.
func (s *Server) saveUpload(fh *multipart.FileHeader) (string, string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", err
	}

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	path := filepath.Join(s.cfg.DataDir, name)
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", "", err
	}
	return path, name, nil
}

func (s *Server) baseURL(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return strings.TrimSuffix(s.cfg.BaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// respondPipelineError maps pipeline error kinds to HTTP statuses.
func (s *Server) respondPipelineError(w http.ResponseWriter, jobID string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pipeline.ErrInvalidJob), errors.Is(err, pipeline.ErrInvalidFrame):
		status = http.StatusBadRequest
	case errors.Is(err, pipeline.ErrUpstream):
		status = http.StatusBadGateway
	}
	s.respondError(w, status, "Failed to generate video: "+err.Error())
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
