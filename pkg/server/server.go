package server

import (
	"context"
	"net/http"

	"github.com/ideamans/go-l10n"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/user/slidecast/pkg/orchestrator"
	"github.com/user/slidecast/pkg/ports"
	"github.com/user/slidecast/pkg/slidecast"
)

// Composer runs the composition pipeline for one job.
type Composer interface {
	Run(ctx context.Context, config orchestrator.Config) (orchestrator.RunResult, error)
}

// Server handles video generation over HTTP.
type Server struct {
	cfg       Config
	engine    slidecast.Config
	composer  Composer
	generator ports.SceneGenerator
	fs        ports.FileSystem
	logger    ports.Logger

	// renderSlots bounds concurrent renders. Acquired non-blocking: a
	// saturated pool rejects the request instead of queueing it.
	renderSlots chan struct{}

	// usedMemoryPercent reports system memory pressure. Overridable in tests.
	usedMemoryPercent func() (float64, error)

	httpServer *http.Server
}

// New creates a Server.
func New(cfg Config, composer Composer, generator ports.SceneGenerator, fs ports.FileSystem, logger ports.Logger) *Server {
	slots := cfg.MaxConcurrentRenders
	if slots < 1 {
		slots = 1
	}
	return &Server{
		cfg:         cfg,
		engine:      cfg.EngineConfig(),
		composer:    composer,
		generator:   generator,
		fs:          fs,
		logger:      logger.WithComponent("server"),
		renderSlots: make(chan struct{}, slots),
		usedMemoryPercent: func() (float64, error) {
			vm, err := mem.VirtualMemory()
			if err != nil {
				return 0, err
			}
			return vm.UsedPercent, nil
		},
	}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.cfg.DataDir))))
	return mux
}

// ListenAndServe starts the server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	if err := s.fs.MkdirAll(s.cfg.DataDir); err != nil {
		return err
	}
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}
	s.logger.Info(l10n.F("Listening on %s", s.cfg.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("API is running"))
}

// tryAcquire reserves a render slot without blocking.
func (s *Server) tryAcquire() bool {
	select {
	case s.renderSlots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Server) release() {
	<-s.renderSlots
}

// memoryPressure returns the used percent and whether admission should stop.
func (s *Server) memoryPressure() (float64, bool) {
	if s.cfg.MaxMemoryPercent <= 0 {
		return 0, false
	}
	used, err := s.usedMemoryPercent()
	if err != nil {
		// No reading means no gate.
		return 0, false
	}
	return used, used > s.cfg.MaxMemoryPercent
}
