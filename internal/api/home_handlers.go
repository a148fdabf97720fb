package api

import "net/http"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	entry := sessionFromContext(r.Context())

	s.render(w, r, "index.html", pageData{
		"state":         entry.View.State(),
		"flipAnimation": s.FlipAnimation,
	})
}
