// Package engine implements the 2048 move-resolution core: a packed board
// of 4-bit tile exponents, a precomputed per-row transform table, and the
// deterministic slide/merge/score/spawn state transition. It contains no
// external dependencies to keep game logic pure and testable.
package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension. The packed row format and the transform
// table are fixed to 4 cells of 4 bits each.
const BoardSize = 4

// maxExponent is the largest exponent a nibble can hold (tile 32768).
// Two saturated tiles cannot merge.
const maxExponent = 15

// Row is a packed line of four 4-bit tile exponents. Index 0 occupies the
// most-significant nibble, so the packed value reads like the row.
type Row uint16

// tableSize is the number of possible packed rows.
const tableSize = 1 << 16

// Pack builds a Row from four exponents.
func Pack(cells [BoardSize]uint8) Row {
	return Row(cells[0])<<12 | Row(cells[1])<<8 | Row(cells[2])<<4 | Row(cells[3])
}

// Unpack splits a Row into four exponents.
func (r Row) Unpack() [BoardSize]uint8 {
	return [BoardSize]uint8{
		uint8(r >> 12),
		uint8(r >> 8 & 0xF),
		uint8(r >> 4 & 0xF),
		uint8(r & 0xF),
	}
}

// Reverse returns the row read back-to-front.
func (r Row) Reverse() Row {
	return r>>12 | r>>4&0x00F0 | r<<4&0x0F00 | r<<12
}

// entry is one precomputed transform result.
type entry struct {
	row   Row
	score uint32
}

// Table maps every packed row to its slid-and-merged result and the score
// gained from merges, for both horizontal directions. Built once at startup
// and never mutated afterwards, so it is safe to share between games.
type Table struct {
	left  [tableSize]entry
	right [tableSize]entry
}

// NewTable precomputes the transforms for all 65536 packed rows. Only the
// slide-left algorithm exists; the right table runs it on the reversed row
// and reverses the result, so merge scoring is computed exactly once per
// row per direction.
func NewTable() *Table {
	t := &Table{}
	for r := 0; r < tableSize; r++ {
		row := Row(r)

		slid, score := slideRow(row)
		t.left[r] = entry{row: slid, score: score}

		slidRev, revScore := slideRow(row.Reverse())
		t.right[r] = entry{row: slidRev.Reverse(), score: revScore}
	}
	return t
}

// Slide looks up the transform for a packed line in the given direction.
// UP and DOWN reuse the LEFT and RIGHT tables: columns share the same
// 4-nibble packed encoding as rows.
func (t *Table) Slide(r Row, d Direction) (Row, int) {
	switch d {
	case DirLeft, DirUp:
		e := t.left[r]
		return e.row, int(e.score)
	default:
		e := t.right[r]
		return e.row, int(e.score)
	}
}

// slideRow slides a packed row toward index 0, merging equal adjacent
// non-zero pairs left to right. A tile merges at most once per move; each
// merge of exponent e yields a tile of e+1 and scores 2^(e+1).
func slideRow(r Row) (Row, uint32) {
	cells := r.Unpack()

	// Compact non-zero cells, preserving order.
	var line [BoardSize]uint8
	n := 0
	for _, c := range cells {
		if c != 0 {
			line[n] = c
			n++
		}
	}

	var out [BoardSize]uint8
	var score uint32
	w := 0
	for i := 0; i < n; i++ {
		if i+1 < n && line[i] == line[i+1] && line[i] < maxExponent {
			out[w] = line[i] + 1
			score += 1 << (line[i] + 1)
			i++ // the consumed neighbor cannot merge again
		} else {
			out[w] = line[i]
		}
		w++
	}

	return Pack(out), score
}
