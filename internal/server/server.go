package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/analyzer"
	"github.com/spacesedan/sentimeter/internal/models"
)

const shutdownTimeout = 30 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*analyzer.AnalysisResult, error)
}

type Server struct {
	cfg       config.ServerConfig
	router    *chi.Mux
	server    *http.Server
	analyzer  Analyzer
	templates *template.Template
}

func New(cfg config.ServerConfig, a Analyzer) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		router:    chi.NewRouter(),
		analyzer:  a,
		templates: templates,
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(loggingMiddleware)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Post("/analyze", s.handleAnalyze)
	s.router.Get("/health", s.handleHealth)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("HTTP request completed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
		)
	})
}

// Run serves until the listener fails or the process receives SIGINT/SIGTERM,
// in which case in-flight requests get shutdownTimeout to finish.
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server", slog.String("address", s.server.Addr))
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("Starting shutdown", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
