// Package api serves the grammar analyzer over HTTP: a JSON API and a
// small HTML form.
package api

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/ggonc/gonc/internal/config"
	"github.com/ggonc/gonc/internal/fetcher"
	"github.com/ggonc/gonc/internal/grammar"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// Server handles HTTP requests for the analyzer
type Server struct {
	analyzer *grammar.Analyzer
	fetcher  *fetcher.Client
	cfg      *config.Config
	limiter  *rate.Limiter
	page     *template.Template
}

// New creates a new API server
func New(a *grammar.Analyzer, f *fetcher.Client, cfg *config.Config) *Server {
	return &Server{
		analyzer: a,
		fetcher:  f,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		page:     template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

// Handler returns the routed handler with all middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Web form
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("POST /{$}", s.limited(s.submit))

	// Analysis
	mux.HandleFunc("POST /analyze", s.limited(s.analyze))
	mux.HandleFunc("POST /analyze/upload", s.limited(s.analyzeUpload))
	mux.HandleFunc("POST /export/csv", s.limited(s.exportCSV))
	mux.HandleFunc("POST /chart", s.limited(s.chart))
	mux.HandleFunc("POST /summary", s.limited(s.summary))

	// Metadata
	mux.HandleFunc("GET /categories", s.categories)
	mux.HandleFunc("GET /health", s.health)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	recovered := sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(c.Handler(mux))
	return logRequests(recovered)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.cfg.FetchTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
