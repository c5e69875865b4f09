package game

// LandingRow returns the lowest empty row in col or -1 if the column is full or out of range
func LandingRow(b *Board, col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	// scans from bottom to top while cells are occupied
	r := Rows - 1
	for r >= 0 && !b.Grid[r][col].Empty() {
		r--
	}
	return r
}

// Place is the only board mutation: it fills (row, col) for p
func Place(b *Board, row, col int, p PlayerID) {
	b.Grid[row][col].Player = p
	b.Moves++
}

// AddPeon drops a piece for p into col and returns the row it landed on
func AddPeon(b *Board, col int, p PlayerID) (int, error) {
	// rejects columns outside bounds
	if col < 0 || col >= Cols {
		return -1, ErrColOutOfRange
	}
	// rejects non playable seats
	if p != Player1 && p != Player2 {
		return -1, ErrInvalidPlayer
	}
	r := LandingRow(b, col)
	if r < 0 {
		// reports a full column when no slots remain
		return -1, ErrColFull
	}
	Place(b, r, col, p)
	return r, nil
}
