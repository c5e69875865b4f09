package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"player-vs-player":   PlayerVsPlayer,
		"PVP":                PlayerVsPlayer,
		" pvc ":              PlayerVsComputer,
		"player-vs-computer": PlayerVsComputer,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("online")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestNewGameIsInSetup(t *testing.T) {
	g := NewGame(testRand(1), Options{})
	assert.Equal(t, StatusSetup, g.Status)
	assert.Equal(t, DefaultMaxTime, g.MaxTime())
	assert.Equal(t, NoPlayer, g.Winner)

	_, err := Begin(g, 0)
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.False(t, Tick(g))
	assert.Zero(t, g.Timer)
}

func TestStartAssignsPlayers(t *testing.T) {
	firsts := map[PlayerID]bool{}
	colors := map[string]bool{}
	for seed := uint64(0); seed < 32; seed++ {
		g := NewGame(testRand(seed), Options{SpecialCells: 4})
		require.NoError(t, Start(g, " Ana ", "Rui", PlayerVsPlayer))

		assert.Equal(t, StatusInProgress, g.Status)
		assert.Equal(t, "Ana", g.Players[0].Name)
		assert.Equal(t, "Rui", g.Players[1].Name)
		assert.NotEqual(t, g.Players[0].Color, g.Players[1].Color)
		assert.Contains(t, Palette, g.Players[0].Color)
		assert.Contains(t, Palette, g.Players[1].Color)
		assert.Len(t, g.Special, 4)
		assert.NotEmpty(t, g.ID)
		assert.Zero(t, g.Timer)
		assert.Equal(t, -1, g.Pending())

		firsts[g.Current] = true
		colors[g.Players[0].Color] = true
	}
	// both seats and both colors come up over enough seeds
	assert.Len(t, firsts, 2)
	assert.Len(t, colors, 2)
}

func TestStartComputerModeRenamesPlayerTwo(t *testing.T) {
	g := NewGame(testRand(2), Options{})
	require.NoError(t, Start(g, "Ana", "Rui", PlayerVsComputer))
	assert.Equal(t, ComputerName, g.Players[1].Name)
	assert.Equal(t, PlayerVsComputer, g.Mode)

	g.Current = Player2
	assert.True(t, g.ComputerTurn())
	g.Current = Player1
	assert.False(t, g.ComputerTurn())
}

func TestStartDefaultsBlankNames(t *testing.T) {
	g := NewGame(testRand(2), Options{})
	require.NoError(t, Start(g, "", "  ", PlayerVsPlayer))
	assert.Equal(t, "Player 1", g.Players[0].Name)
	assert.Equal(t, "Player 2", g.Players[1].Name)
}

func TestStartRejectsUnknownMode(t *testing.T) {
	g := NewGame(testRand(2), Options{})
	assert.ErrorIs(t, Start(g, "Ana", "Rui", Mode("online")), ErrInvalidMode)
	assert.Equal(t, StatusSetup, g.Status)
}

func TestRestartGivesNewSession(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)
	require.NoError(t, Play(g, 0))
	id := g.ID

	require.NoError(t, Start(g, "Ana", "Rui", PlayerVsPlayer))
	assert.NotEqual(t, id, g.ID)
	assert.Zero(t, g.Board.Moves)
}

func TestNonSpecialCellTogglesTurn(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)
	require.NoError(t, Play(g, 3))
	assert.Equal(t, Player2, g.Current)
	assert.Equal(t, Player1, g.Board.Grid[Rows-1][3].Player)
	require.NoError(t, Play(g, 3))
	assert.Equal(t, Player1, g.Current)
	assert.Equal(t, Player2, g.Board.Grid[Rows-2][3].Player)
}

func TestSpecialCellGrantsExtraTurn(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)
	g.Board.Grid[Rows-1][3].Special = true
	g.Timer = 5

	require.NoError(t, Play(g, 3))
	assert.Equal(t, Player1, g.Current)
	assert.Zero(t, g.Timer)

	// the next ordinary drop hands the turn over as usual
	require.NoError(t, Play(g, 4))
	assert.Equal(t, Player2, g.Current)
}

func TestMoveInFlightBlocksSecondClick(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)

	row, err := Begin(g, 2)
	require.NoError(t, err)
	assert.Equal(t, Rows-1, row)
	assert.Equal(t, 2, g.Pending())

	_, err = Begin(g, 5)
	assert.ErrorIs(t, err, ErrMoveInFlight)
	assert.Zero(t, g.Board.Moves, "nothing lands before resolution")
	assert.True(t, g.Board.Grid[Rows-1][5].Empty())

	require.NoError(t, Resolve(g))
	assert.Equal(t, 1, g.Board.Moves)
	assert.Equal(t, Player1, g.Board.Grid[Rows-1][2].Player)
	assert.Equal(t, -1, g.Pending())
	assert.Equal(t, Rows-1, g.LastRow)
	assert.Equal(t, 2, g.LastCol)

	assert.ErrorIs(t, Resolve(g), ErrNoPendingMove)
}

func TestFullColumnClickIsIgnored(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)
	for i := 0; i < Rows; i++ {
		require.NoError(t, Play(g, 0))
	}
	cur := g.Current
	before := g.Board

	_, err := Begin(g, 0)
	assert.ErrorIs(t, err, ErrColFull)
	_, err = Begin(g, -1)
	assert.ErrorIs(t, err, ErrColOutOfRange)
	assert.Equal(t, before, g.Board)
	assert.Equal(t, cur, g.Current)
	assert.Equal(t, -1, g.Pending())
}

func TestVerticalWinEndsGame(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)
	for _, col := range []int{0, 1, 0, 1, 0, 1} {
		require.NoError(t, Play(g, col))
	}
	g.Board.Grid[2][0].Special = true
	g.Timer = 4
	require.NoError(t, Play(g, 0))

	assert.Equal(t, StatusWon, g.Status)
	assert.Equal(t, Player1, g.Winner)
	assert.False(t, g.IsDraw)
	assert.Equal(t, []Coord{{2, 0}, {3, 0}, {4, 0}, {5, 0}}, g.WinningCells)

	// the game is over: no more drops and the clock is frozen
	before := g.Board
	_, err := Begin(g, 3)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.False(t, Tick(g))
	assert.Equal(t, 4, g.Timer)
	assert.Equal(t, before, g.Board)
}

func TestLastCellDraw(t *testing.T) {
	g := startedGame(t, Options{}, PlayerVsPlayer)
	g.Board = drawnBoard()
	g.Board.Grid[0][6].Player = NoPlayer
	g.Board.Moves--
	g.Current = Player2

	require.NoError(t, Play(g, 6))
	assert.Equal(t, StatusDraw, g.Status)
	assert.True(t, g.IsDraw)
	assert.Equal(t, NoPlayer, g.Winner)
	assert.Empty(t, g.WinningCells)
	assert.Equal(t, Rows*Cols, g.Board.Moves)

	_, err := Begin(g, 6)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.False(t, Tick(g))
}

func TestTickExpiryPassesTurn(t *testing.T) {
	g := startedGame(t, Options{MaxTime: 3}, PlayerVsPlayer)
	g.Board.Grid[Rows-1][0].Special = true
	before := g.Board

	assert.False(t, Tick(g))
	assert.False(t, Tick(g))
	assert.Equal(t, 2, g.Timer)
	assert.Equal(t, Player1, g.Current)

	assert.True(t, Tick(g))
	assert.Zero(t, g.Timer)
	assert.Equal(t, Player2, g.Current)
	assert.Equal(t, before, g.Board)

	// and again for the other seat
	for i := 0; i < 3; i++ {
		Tick(g)
	}
	assert.Equal(t, Player1, g.Current)
}

func TestMoveResetsTimer(t *testing.T) {
	g := startedGame(t, Options{MaxTime: 10}, PlayerVsPlayer)
	Tick(g)
	Tick(g)
	require.NoError(t, Play(g, 1))
	assert.Zero(t, g.Timer)
}

func TestTickWaitsForMoveInFlight(t *testing.T) {
	g := startedGame(t, Options{MaxTime: 1}, PlayerVsPlayer)
	_, err := Begin(g, 1)
	require.NoError(t, err)

	assert.False(t, Tick(g))
	assert.Zero(t, g.Timer)
	assert.Equal(t, Player1, g.Current)

	require.NoError(t, Resolve(g))
	assert.Equal(t, Player1, g.Board.Grid[Rows-1][1].Player)
}

func TestResetReturnsToSetup(t *testing.T) {
	g := startedGame(t, Options{MaxTime: 9, SpecialCells: 3}, PlayerVsComputer)
	require.NoError(t, Play(g, 1))
	_, err := Begin(g, 2)
	require.NoError(t, err)

	Reset(g)
	assert.Equal(t, StatusSetup, g.Status)
	assert.Zero(t, g.Board.Moves)
	assert.Empty(t, g.Special)
	assert.Equal(t, -1, g.Pending())
	assert.Equal(t, 9, g.MaxTime())
	assert.ErrorIs(t, Resolve(g), ErrNoPendingMove)

	_, err = Begin(g, 0)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame(t, Options{SpecialCells: 2}, PlayerVsPlayer)
	st := Snapshot(g)
	require.NoError(t, Play(g, 0))

	assert.Zero(t, st.Moves)
	assert.True(t, st.Board[Rows-1][0].Empty())
	assert.Nil(t, st.Winner)
	assert.Equal(t, -1, st.Animating)

	out, err := json.Marshal(st)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Nil(t, decoded["winner"])
	assert.Equal(t, "in-progress", decoded["status"])
	assert.Len(t, decoded["specialCells"], 2)
}
