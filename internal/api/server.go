package api

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/services"
	"github.com/vytor/flipdeck/internal/session"
)

// HealthChecker reports whether a backing dependency can serve requests.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

type Server struct {
	DeckService    services.DeckService
	Sessions       *session.Manager
	Templates      *template.Template
	DB             HealthChecker
	AllowedOrigins []string
	FlipAnimation  time.Duration
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	log := logger.FromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
