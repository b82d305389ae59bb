package engine

// Board is the 4x4 grid of tile exponents, row-major. A zero cell is empty;
// exponent n displays as 2^n. The board is owned by the Game; renderers
// read it and must not mutate it.
type Board struct {
	cells [BoardSize * BoardSize]uint8
}

// Cell returns the exponent at column x, row y.
func (b *Board) Cell(x, y int) uint8 {
	return b.cells[y*BoardSize+x]
}

// SetCell stores an exponent at column x, row y.
func (b *Board) SetCell(x, y int, exp uint8) {
	b.cells[y*BoardSize+x] = exp
}

// Value returns the displayed tile value at column x, row y (0 for empty).
func (b *Board) Value(x, y int) int {
	exp := b.Cell(x, y)
	if exp == 0 {
		return 0
	}
	return 1 << exp
}

// Row returns row y as a packed value.
func (b *Board) Row(y int) Row {
	i := y * BoardSize
	return Row(b.cells[i])<<12 | Row(b.cells[i+1])<<8 | Row(b.cells[i+2])<<4 | Row(b.cells[i+3])
}

// SetRow writes a packed value into row y.
func (b *Board) SetRow(y int, r Row) {
	cells := r.Unpack()
	copy(b.cells[y*BoardSize:(y+1)*BoardSize], cells[:])
}

// Col returns column x packed in the same 4-nibble format as rows, so a
// column can go through the row transform table unchanged.
func (b *Board) Col(x int) Row {
	return Row(b.cells[x])<<12 | Row(b.cells[x+4])<<8 | Row(b.cells[x+8])<<4 | Row(b.cells[x+12])
}

// SetCol writes a packed value into column x.
func (b *Board) SetCol(x int, r Row) {
	cells := r.Unpack()
	for i, c := range cells {
		b.cells[i*BoardSize+x] = c
	}
}

// Fill sets every cell to the given exponent. Fill(0) clears the board.
func (b *Board) Fill(exp uint8) {
	for i := range b.cells {
		b.cells[i] = exp
	}
}

// EmptyCells returns the row-major indices of all empty cells.
func (b *Board) EmptyCells() []int {
	var cells []int
	for i, c := range b.cells {
		if c == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// MaxTile returns the highest displayed tile value on the board.
func (b *Board) MaxTile() int {
	var best uint8
	for _, c := range b.cells {
		if c > best {
			best = c
		}
	}
	if best == 0 {
		return 0
	}
	return 1 << best
}

// HasMove reports whether any legal move remains: an empty cell, or two
// equal adjacent exponents in some row or column. False means game over.
func (b *Board) HasMove() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			c := b.Cell(x, y)
			if c == 0 {
				return true
			}
			if x < BoardSize-1 && b.Cell(x+1, y) == c {
				return true
			}
			if y < BoardSize-1 && b.Cell(x, y+1) == c {
				return true
			}
		}
	}
	return false
}
