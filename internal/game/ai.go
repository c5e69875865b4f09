package game

import (
	"math"
	"math/rand/v2"
)

func validMoves(b *Board) []int {
	var out []int
	for c := 0; c < Cols; c++ {
		if !ColumnFull(b, c) {
			out = append(out, c)
		}
	}
	return out
}

func apply(b Board, col int, p PlayerID) (Board, int, bool) {
	nb := b
	row, err := AddPeon(&nb, col, p)
	if err != nil {
		return b, -1, false
	}
	return nb, row, true
}

func countWindow(vals [ToWin]Cell, me PlayerID) int {
	opp := me.Other()
	meCount := 0
	oppCount := 0
	empty := 0
	for _, v := range vals {
		switch v.Player {
		case me:
			meCount++
		case opp:
			oppCount++
		default:
			empty++
		}
	}
	if meCount == 4 {
		return 10000
	}
	if meCount == 3 && empty == 1 {
		return 100
	}
	if meCount == 2 && empty == 2 {
		return 10
	}
	if oppCount == 3 && empty == 1 {
		return -120
	}
	if oppCount == 2 && empty == 2 {
		return -12
	}
	return 0
}

func eval(b *Board, me PlayerID) int {
	g := &b.Grid
	score := 0
	centerCol := Cols / 2
	for r := 0; r < Rows; r++ {
		if g[r][centerCol].Player == me {
			score += 6
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-ToWin; c++ {
			score += countWindow([ToWin]Cell{g[r][c], g[r][c+1], g[r][c+2], g[r][c+3]}, me)
		}
	}
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			score += countWindow([ToWin]Cell{g[r][c], g[r+1][c], g[r+2][c], g[r+3][c]}, me)
		}
	}
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Cols-ToWin; c++ {
			score += countWindow([ToWin]Cell{g[r][c], g[r+1][c+1], g[r+2][c+2], g[r+3][c+3]}, me)
		}
	}
	for r := ToWin - 1; r < Rows; r++ {
		for c := 0; c <= Cols-ToWin; c++ {
			score += countWindow([ToWin]Cell{g[r][c], g[r-1][c+1], g[r-2][c+2], g[r-3][c+3]}, me)
		}
	}
	return score
}

func immediateWin(b *Board, p PlayerID) int {
	for _, c := range validMoves(b) {
		nb, row, ok := apply(*b, c, p)
		if !ok {
			continue
		}
		if CheckWin(&nb, row, c, p).IsWin {
			return c
		}
	}
	return -1
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ComputerMove picks a column for me: win, else block, else the best scored open column.
// It returns -1 only when every column is full.
func ComputerMove(b *Board, me PlayerID, rng *rand.Rand) int {
	moves := validMoves(b)
	if len(moves) == 0 {
		return -1
	}
	if c := immediateWin(b, me); c >= 0 {
		return c
	}
	opp := me.Other()
	if c := immediateWin(b, opp); c >= 0 {
		return c
	}

	center := Cols / 2
	var best []int
	bestScore := math.MinInt32
	for _, c := range moves {
		nb, row, ok := apply(*b, c, me)
		if !ok {
			continue
		}
		sc := eval(&nb, me) - absInt(center-c)
		if nb.Grid[row][c].Special {
			// a special cell means playing again before the opponent answers
			sc += 50
		} else if immediateWin(&nb, opp) >= 0 {
			sc -= 1000
		}
		switch {
		case sc > bestScore:
			bestScore = sc
			best = append(best[:0], c)
		case sc == bestScore:
			best = append(best, c)
		}
	}
	if len(best) == 0 {
		return moves[rng.IntN(len(moves))]
	}
	return best[rng.IntN(len(best))]
}
