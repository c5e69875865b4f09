package game

import (
	"encoding/json"
	"math/rand/v2"
)

const (
	Cols  = 7
	Rows  = 6
	ToWin = 4
)

// PlayerID is a seat index, 0 or 1
type PlayerID int

const (
	NoPlayer PlayerID = -1
	Player1  PlayerID = 0
	Player2  PlayerID = 1
)

// Other returns the opposite seat
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Coord addresses a cell, row 0 is the top row
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Cell struct {
	Player  PlayerID // NoPlayer while empty
	Special bool     // filling it grants another turn
}

// Empty reports whether no piece occupies the cell
func (c Cell) Empty() bool { return c.Player == NoPlayer }

// MarshalJSON renders an empty cell's player as null
func (c Cell) MarshalJSON() ([]byte, error) {
	var p *PlayerID
	if !c.Empty() {
		v := c.Player
		p = &v
	}
	return json.Marshal(struct {
		Player    *PlayerID `json:"player"`
		IsSpecial bool      `json:"isSpecial"`
	}{p, c.Special})
}

type Board struct {
	Grid  [Rows][Cols]Cell // row-major, row 0 on top
	Moves int              // pieces placed so far
}

// NewBoard creates an empty board without special cells
func NewBoard() Board {
	var b Board
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.Grid[r][c] = Cell{Player: NoPlayer}
		}
	}
	return b
}

// InitializeBoard creates an empty board and marks count distinct cells as special
func InitializeBoard(rng *rand.Rand, count int) (Board, []Coord) {
	b := NewBoard()
	if count <= 0 {
		return b, nil
	}
	if count > Rows*Cols {
		count = Rows * Cols
	}

	// partial Fisher-Yates over the flattened grid
	idx := make([]int, Rows*Cols)
	for i := range idx {
		idx[i] = i
	}
	special := make([]Coord, 0, count)
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		at := Coord{Row: idx[i] / Cols, Col: idx[i] % Cols}
		b.Grid[at.Row][at.Col].Special = true
		special = append(special, at)
	}
	return b, special
}

// ColumnFull reports whether col cannot take another piece; out-of-range columns are never playable
func ColumnFull(b *Board, col int) bool {
	if col < 0 || col >= Cols {
		return true
	}
	return !b.Grid[0][col].Empty()
}

// IsFull returns whether the board has no remaining moves
func IsFull(b *Board) bool {
	return b.Moves >= Rows*Cols
}

// CheckDraw reports a full board; with gravity a full top row means every cell is taken
func CheckDraw(b *Board) bool {
	for c := 0; c < Cols; c++ {
		if b.Grid[0][c].Empty() {
			return false
		}
	}
	return true
}

// WinResult is the outcome of a local line scan
type WinResult struct {
	IsWin bool
	Cells []Coord // the four winning coordinates, ordered along the line
}

// axes in tie-break order: horizontal, vertical, diagonal down-right, diagonal down-left
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func inside(r, c int) bool { return r >= 0 && r < Rows && c >= 0 && c < Cols }

// CheckWin scans the four lines through (row, col) for ToWin contiguous pieces of p
func CheckWin(b *Board, row, col int, p PlayerID) WinResult {
	if !inside(row, col) || b.Grid[row][col].Player != p {
		return WinResult{}
	}
	for _, d := range axes {
		// walks back to the start of the run
		back := 0
		for r, c := row-d[0], col-d[1]; inside(r, c) && b.Grid[r][c].Player == p; r, c = r-d[0], c-d[1] {
			back++
		}
		fwd := 0
		for r, c := row+d[0], col+d[1]; inside(r, c) && b.Grid[r][c].Player == p; r, c = r+d[0], c+d[1] {
			fwd++
		}
		run := back + 1 + fwd
		if run < ToWin {
			continue
		}

		// earliest window of ToWin cells that still holds the placed piece
		start := back - (ToWin - 1)
		if start < 0 {
			start = 0
		}
		sr, sc := row-back*d[0], col-back*d[1]
		cells := make([]Coord, ToWin)
		for i := range cells {
			k := start + i
			cells[i] = Coord{Row: sr + k*d[0], Col: sc + k*d[1]}
		}
		return WinResult{IsWin: true, Cells: cells}
	}
	return WinResult{}
}
