package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// boardFrom builds a board from rows written top to bottom: X is Player1, O is Player2, . is empty
func boardFrom(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Rows)
	b := NewBoard()
	for r, line := range rows {
		require.Len(t, line, Cols, "row %d", r)
		for c, ch := range line {
			switch ch {
			case 'X':
				b.Grid[r][c].Player = Player1
				b.Moves++
			case 'O':
				b.Grid[r][c].Player = Player2
				b.Moves++
			case '.':
			default:
				t.Fatalf("bad cell %q at %d,%d", ch, r, c)
			}
		}
	}
	return b
}

// drawnBoard is a full board with no four in a row anywhere
func drawnBoard() Board {
	pattern := [Cols]int{0, 0, 1, 1, 0, 0, 1}
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.Grid[r][c].Player = PlayerID(pattern[c] ^ (r % 2))
		}
	}
	b.Moves = Rows * Cols
	return b
}

func requireGravity(t *testing.T, b *Board) {
	t.Helper()
	for c := 0; c < Cols; c++ {
		seenEmpty := false
		for r := Rows - 1; r >= 0; r-- {
			if b.Grid[r][c].Empty() {
				seenEmpty = true
				continue
			}
			require.False(t, seenEmpty, "floating piece at %d,%d", r, c)
		}
	}
}

// startedGame returns an in-progress game with Player1 to move
func startedGame(t *testing.T, opts Options, mode Mode) *Game {
	t.Helper()
	g := NewGame(testRand(7), opts)
	require.NoError(t, Start(g, "Ana", "Rui", mode))
	g.Current = Player1
	return g
}
