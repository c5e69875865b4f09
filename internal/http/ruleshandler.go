package httphandler

import (
	"net/http"

	"power4special/internal/game"
)

type rulesView struct {
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	ToWin        int       `json:"toWin"`
	MaxTime      int       `json:"maxTime"`
	SpecialCells int       `json:"specialCells"`
	ComputerName string    `json:"computerName"`
	Palette      [2]string `json:"palette"`
	Modes        []string  `json:"modes"`
}

// ShowRules describes the fixed rules the engine plays by
func (s *Server) ShowRules(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	opts := s.eng.Rules()
	maxTime := opts.MaxTime
	if maxTime <= 0 {
		maxTime = game.DefaultMaxTime
	}
	writeJSON(w, http.StatusOK, rulesView{
		Rows:         game.Rows,
		Cols:         game.Cols,
		ToWin:        game.ToWin,
		MaxTime:      maxTime,
		SpecialCells: opts.SpecialCells,
		ComputerName: game.ComputerName,
		Palette:      game.Palette,
		Modes:        []string{string(game.PlayerVsPlayer), string(game.PlayerVsComputer)},
	})
}
