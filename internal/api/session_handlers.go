package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/quiz"
)

type actionResponse struct {
	Accepted bool          `json:"accepted"`
	State    quiz.Snapshot `json:"state"`
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	entry := sessionFromContext(r.Context())
	writeJSON(w, r, http.StatusOK, entry.Controller.Snapshot())
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	s.runAction(w, r, "play", (*quiz.Controller).PrimaryAction)
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	s.runAction(w, r, "return", (*quiz.Controller).ReturnAction)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	s.runAction(w, r, "card", (*quiz.Controller).CardAction)
}

func (s *Server) runAction(w http.ResponseWriter, r *http.Request, name string, action func(*quiz.Controller) bool) {
	log := logger.FromContext(r.Context())
	entry := sessionFromContext(r.Context())

	accepted := action(entry.Controller)
	if !accepted {
		log.Debug("%s action ignored", name)
	}

	writeJSON(w, r, http.StatusOK, actionResponse{
		Accepted: accepted,
		State:    entry.Controller.Snapshot(),
	})
}

// handleSessionEvents streams every surface change as a server-sent event.
func (s *Server) handleSessionEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	entry := sessionFromContext(r.Context())

	rc := http.NewResponseController(w)
	// The stream outlives the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Error("streaming unsupported: %v", err)
		return
	}

	events, cancel := entry.View.Subscribe()
	defer cancel()

	log.Debug("event stream opened")
	for {
		select {
		case st, ok := <-events:
			if !ok {
				log.Debug("event stream closed by session")
				return
			}
			data, err := json.Marshal(st)
			if err != nil {
				log.Error("failed to encode event: %v", err)
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case <-r.Context().Done():
			log.Debug("event stream closed by client")
			return
		}
	}
}
