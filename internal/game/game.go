package game

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrColOutOfRange = errors.New("column out of range")
	ErrColFull       = errors.New("column full")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidMode   = errors.New("invalid game mode")
	ErrNotStarted    = errors.New("game not started")
	ErrGameOver      = errors.New("game over")
	ErrMoveInFlight  = errors.New("move already in flight")
	ErrNoPendingMove = errors.New("no pending move")
)

type Mode string

const (
	PlayerVsPlayer   Mode = "player-vs-player"
	PlayerVsComputer Mode = "player-vs-computer"
)

// ParseMode accepts the long mode names and their short pvp/pvc forms
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PlayerVsPlayer), "pvp":
		return PlayerVsPlayer, nil
	case string(PlayerVsComputer), "pvc":
		return PlayerVsComputer, nil
	}
	return "", ErrInvalidMode
}

type Status string

const (
	StatusSetup      Status = "setup"
	StatusInProgress Status = "in-progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// ComputerName replaces player 2's name in player-vs-computer games
const ComputerName = "Computer"

// Palette holds the two piece colors handed out at start
var Palette = [2]string{"#FF5252", "#FFEB3B"}

const DefaultMaxTime = 30

type Player struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Options fixes the per-session rules that come from configuration
type Options struct {
	MaxTime      int // seconds a turn may last before it passes
	SpecialCells int // number of special cells per board
}

type pending struct {
	Row, Col int
	Player   PlayerID
}

type Game struct {
	ID           string
	Board        Board
	Special      []Coord
	Players      [2]Player
	Current      PlayerID
	Timer        int
	Status       Status
	Winner       PlayerID
	IsDraw       bool
	WinningCells []Coord
	Mode         Mode
	LastRow      int
	LastCol      int

	opts    Options
	rng     *rand.Rand
	pending *pending
}

// NewGame returns an unstarted game using rng for every random choice
func NewGame(rng *rand.Rand, opts Options) *Game {
	if opts.MaxTime <= 0 {
		opts.MaxTime = DefaultMaxTime
	}
	g := &Game{opts: opts, rng: rng}
	Reset(g)
	return g
}

// MaxTime returns the turn ceiling in seconds
func (g *Game) MaxTime() int { return g.opts.MaxTime }

// Start begins a fresh session, picking the first player and the colors at random
func Start(g *Game, player1, player2 string, mode Mode) error {
	if mode != PlayerVsPlayer && mode != PlayerVsComputer {
		return ErrInvalidMode
	}
	p1 := strings.TrimSpace(player1)
	if p1 == "" {
		p1 = "Player 1"
	}
	p2 := strings.TrimSpace(player2)
	if p2 == "" {
		p2 = "Player 2"
	}
	if mode == PlayerVsComputer {
		p2 = ComputerName
	}

	color := g.rng.IntN(2)
	g.Board, g.Special = InitializeBoard(g.rng, g.opts.SpecialCells)
	g.ID = uuid.NewString()
	g.Players = [2]Player{
		{Name: p1, Color: Palette[color]},
		{Name: p2, Color: Palette[1-color]},
	}
	g.Current = PlayerID(g.rng.IntN(2))
	g.Timer = 0
	g.Status = StatusInProgress
	g.Winner = NoPlayer
	g.IsDraw = false
	g.WinningCells = nil
	g.Mode = mode
	g.LastRow, g.LastCol = -1, -1
	g.pending = nil
	return nil
}

// Reset discards the session and returns to setup
func Reset(g *Game) {
	opts, rng := g.opts, g.rng
	*g = Game{
		Board:   NewBoard(),
		Current: Player1,
		Status:  StatusSetup,
		Winner:  NoPlayer,
		LastRow: -1,
		LastCol: -1,
		opts:    opts,
		rng:     rng,
	}
}

func ToggleTurn(g *Game) {
	g.Current = g.Current.Other()
}

// Pending returns the column of the move in flight or -1
func (g *Game) Pending() int {
	if g.pending == nil {
		return -1
	}
	return g.pending.Col
}

// ComputerTurn reports whether the computer should pick the next column now
func (g *Game) ComputerTurn() bool {
	return g.Status == StatusInProgress && g.Mode == PlayerVsComputer &&
		g.Current == Player2 && g.pending == nil
}

// Begin validates a drop in col for the current player and holds it in flight until Resolve
func Begin(g *Game, col int) (int, error) {
	switch g.Status {
	case StatusSetup:
		return -1, ErrNotStarted
	case StatusWon, StatusDraw:
		return -1, ErrGameOver
	}
	if g.pending != nil {
		return -1, ErrMoveInFlight
	}
	if col < 0 || col >= Cols {
		return -1, ErrColOutOfRange
	}
	row := LandingRow(&g.Board, col)
	if row < 0 {
		return -1, ErrColFull
	}
	g.pending = &pending{Row: row, Col: col, Player: g.Current}
	return row, nil
}

// Resolve applies the move in flight, then settles win, draw and whose turn it is
func Resolve(g *Game) error {
	mv := g.pending
	if mv == nil {
		return ErrNoPendingMove
	}
	g.pending = nil
	if g.Status != StatusInProgress {
		return ErrGameOver
	}

	Place(&g.Board, mv.Row, mv.Col, mv.Player)
	g.LastRow, g.LastCol = mv.Row, mv.Col

	if res := CheckWin(&g.Board, mv.Row, mv.Col, mv.Player); res.IsWin {
		g.Status = StatusWon
		g.Winner = mv.Player
		g.WinningCells = res.Cells
		return nil
	}
	if CheckDraw(&g.Board) {
		g.Status = StatusDraw
		g.IsDraw = true
		return nil
	}

	g.Timer = 0
	g.Current = mv.Player
	if !g.Board.Grid[mv.Row][mv.Col].Special {
		ToggleTurn(g)
	}
	return nil
}

// Play drops a piece in col and resolves it at once
func Play(g *Game, col int) error {
	if _, err := Begin(g, col); err != nil {
		return err
	}
	return Resolve(g)
}

// Tick advances the turn clock by one second and reports whether the turn expired.
// Expiry passes the turn unconditionally, special cells play no part in it.
func Tick(g *Game) bool {
	if g.Status != StatusInProgress || g.pending != nil {
		return false
	}
	g.Timer++
	if g.Timer < g.opts.MaxTime {
		return false
	}
	ToggleTurn(g)
	g.Timer = 0
	return true
}
