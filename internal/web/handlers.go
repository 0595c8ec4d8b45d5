package web

import (
	"net/http"

	"github.com/cvzbynek/DLF/internal/logging"
)

// servePage writes one of the embedded HTML pages.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, name string) {
	data, err := assets.ReadFile("pages/" + name)
	if err != nil {
		logging.FromContext(r.Context()).Error("missing embedded page", "page", name, "error", err)
		http.Error(w, "stránka nenalezena", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleHome renders the landing page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "index.html")
}

// handleRegister renders the registration form.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "form.html")
}

// handleSuccess renders the confirmation page shown after a recorded
// submission.
func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "success.html")
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
