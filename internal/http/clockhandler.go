package httphandler

import (
	"fmt"
	"net/http"

	"power4special/internal/game"
)

type clockView struct {
	Timer         int           `json:"timer"`
	MaxTime       int           `json:"maxTime"`
	TimeLeft      string        `json:"timeLeft"`
	CurrentPlayer game.PlayerID `json:"currentPlayer"`
	Status        game.Status   `json:"status"`
}

// ShowClock returns the turn countdown, "--:--" when no turn is running
func (s *Server) ShowClock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	st, err := s.eng.State(r.Context())
	if err != nil {
		s.engineError(w, err)
		return
	}

	tleft := "--:--"
	if st.Status == game.StatusInProgress {
		remaining := st.MaxTime - st.Timer
		if remaining < 0 {
			remaining = 0
		}
		tleft = fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
	}
	writeJSON(w, http.StatusOK, clockView{
		Timer:         st.Timer,
		MaxTime:       st.MaxTime,
		TimeLeft:      tleft,
		CurrentPlayer: st.CurrentPlayer,
		Status:        st.Status,
	})
}
