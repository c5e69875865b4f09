package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"power4special/internal/engine"
	"power4special/internal/game"
)

// Server exposes one engine to the presentation layer
type Server struct {
	eng *engine.Engine
	log *zap.Logger
}

func NewServer(eng *engine.Engine, log *zap.Logger) *Server {
	return &Server{eng: eng, log: log}
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports msg as a JSON error body
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// NotFound answers unknown paths
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

// writeState answers with the engine's current snapshot
func (s *Server) writeState(w http.ResponseWriter, r *http.Request) {
	st, err := s.eng.State(r.Context())
	if err != nil {
		s.engineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// engineError maps engine failures to status codes; game rejections are not failures
func (s *Server) engineError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrStopped) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.log.Warn("engine call failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}

// rejected reports errors that only mean the move or start request was ignored
func rejected(err error) bool {
	return errors.Is(err, game.ErrColFull) ||
		errors.Is(err, game.ErrColOutOfRange) ||
		errors.Is(err, game.ErrGameOver) ||
		errors.Is(err, game.ErrMoveInFlight) ||
		errors.Is(err, game.ErrNotStarted)
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

func formInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
}
