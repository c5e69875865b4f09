package game

// State is a value copy of a session handed to the presentation layer
type State struct {
	ID            string           `json:"id,omitempty"`
	Status        Status           `json:"status"`
	Mode          Mode             `json:"mode,omitempty"`
	Board         [Rows][Cols]Cell `json:"board"`
	Special       []Coord          `json:"specialCells"`
	Players       [2]Player        `json:"players"`
	CurrentPlayer PlayerID         `json:"currentPlayer"`
	Timer         int              `json:"timer"`
	MaxTime       int              `json:"maxTime"`
	Winner        *PlayerID        `json:"winner"`
	IsDraw        bool             `json:"isDraw"`
	WinningCells  []Coord          `json:"winningCells"`
	Moves         int              `json:"moves"`
	LastRow       int              `json:"lastRow"`
	LastCol       int              `json:"lastCol"`
	Animating     int              `json:"animatingColumn"`
}

// Snapshot copies the session so callers never share memory with it
func Snapshot(g *Game) State {
	st := State{
		ID:            g.ID,
		Status:        g.Status,
		Mode:          g.Mode,
		Board:         g.Board.Grid,
		Special:       append([]Coord(nil), g.Special...),
		Players:       g.Players,
		CurrentPlayer: g.Current,
		Timer:         g.Timer,
		MaxTime:       g.opts.MaxTime,
		IsDraw:        g.IsDraw,
		WinningCells:  append([]Coord{}, g.WinningCells...),
		Moves:         g.Board.Moves,
		LastRow:       g.LastRow,
		LastCol:       g.LastCol,
		Animating:     g.Pending(),
	}
	if g.Winner != NoPlayer {
		w := g.Winner
		st.Winner = &w
	}
	return st
}
