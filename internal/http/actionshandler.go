package httphandler

import (
	"net/http"

	"go.uber.org/zap"

	"power4special/internal/game"
)

// Start begins a new game from the player1, player2 and mode form values
func (s *Server) Start(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	mode, err := game.ParseMode(r.FormValue("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.eng.StartGame(r.Context(), r.FormValue("player1"), r.FormValue("player2"), mode); err != nil {
		s.engineError(w, err)
		return
	}
	s.writeState(w, r)
}

// Reset returns the engine to the setup state
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if err := s.eng.ResetGame(r.Context()); err != nil {
		s.engineError(w, err)
		return
	}
	s.writeState(w, r)
}

// Play drops a piece in the posted column; illegal drops are ignored and the state is returned unchanged
func (s *Server) Play(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	col, err := formInt(r, "column")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid column")
		return
	}
	if err := s.eng.HandleColumnClick(r.Context(), col); err != nil {
		if !rejected(err) {
			s.engineError(w, err)
			return
		}
		s.log.Debug("click ignored", zap.Int("col", col), zap.Error(err))
	}
	s.writeState(w, r)
}
