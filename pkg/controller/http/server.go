package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/usecase"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/logging"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	version string
}

type Options func(*Server)

func WithVersion(version string) Options {
	return func(s *Server) {
		s.version = version
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/dataset", func(r chi.Router) {
			r.Get("/years", s.yearsHandler)
			r.Get("/categories", s.categoriesHandler)
		})

		r.Route("/session", func(r chi.Router) {
			r.Post("/", s.createSessionHandler)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.getSessionHandler)
				r.Delete("/", s.closeSessionHandler)

				r.Put("/year", s.setYearHandler)
				r.Post("/theme/toggle", s.toggleThemeHandler)
				r.Put("/simulation", s.setSimulationHandler)
				r.Put("/selection", s.selectCategoryHandler)
				r.Delete("/selection", s.clearSelectionHandler)

				r.Get("/heatmap", s.heatmapHandler)
				r.Get("/gap", s.gapHandler)
				r.Get("/radar/{categoryID}", s.radarHandler)
				r.Get("/stats", s.statsHandler)
				r.Get("/detail", s.detailHandler)
				r.Get("/export", s.exportHandler)
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}
