package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS()))))

	r.With(s.sessionMiddleware).Get("/", s.handleHome)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Get("/deck", s.handleListCards)
		r.Get("/deck/{id}", s.handleGetCard)

		r.Route("/session", func(r chi.Router) {
			r.Use(s.sessionMiddleware)
			r.Get("/", s.handleSessionState)
			r.Get("/events", s.handleSessionEvents)
			r.Post("/play", s.handlePlay)
			r.Post("/return", s.handleReturn)
			r.Post("/card", s.handleCard)
		})
	})

	return r
}
