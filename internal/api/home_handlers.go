package api

import "net/http"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, envelope{"Message": "Server is running ✨"})
}
