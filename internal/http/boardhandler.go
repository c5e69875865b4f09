package httphandler

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ShowState returns the session snapshot. With ?wait=1 it long-polls up to 25s for the next change.
func (s *Server) ShowState(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	if wait, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("wait"))); wait {
		ch, unsub := s.eng.Subscribe()
		defer unsub()
		select {
		case <-ch:
		case <-time.After(25 * time.Second):
		case <-r.Context().Done():
			return
		}
	}
	s.writeState(w, r)
}
