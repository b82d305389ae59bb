package engine

import "math/rand"

// Exponents and default probability for spawned tiles.
const (
	spawnSmallExp  = 1 // tile 2
	spawnLargeExp  = 2 // tile 4
	defaultSpawn4P = 0.10
)

// BestStore persists the best score across games. The stored value must
// never decrease; Best returns 0 when nothing was stored yet.
type BestStore interface {
	Best() (int, error)
	SaveBest(score int) error
}

// Game applies directional moves to a board using a shared transform table
// and tracks the running and best scores. It assumes a single caller at a
// time and performs no locking; the surrounding UI serializes moves.
type Game struct {
	table *Table
	board Board
	rng   *rand.Rand

	score int
	best  int
	bests BestStore

	spawn4    float64
	lastSpawn int // row-major index of the most recent spawn, -1 if none
}

// Option configures a Game.
type Option func(*Game)

// WithBestStore attaches a persistence adapter for the best score. The
// stored value is loaded once at construction.
func WithBestStore(s BestStore) Option {
	return func(g *Game) { g.bests = s }
}

// WithSpawn4Probability overrides the chance of spawning a 4 instead of a 2.
func WithSpawn4Probability(p float64) Option {
	return func(g *Game) { g.spawn4 = p }
}

// NewGame creates a game, loads the stored best score, and deals the two
// opening tiles.
func NewGame(table *Table, seed int64, opts ...Option) *Game {
	g := &Game{
		table:     table,
		rng:       rand.New(rand.NewSource(seed)),
		spawn4:    defaultSpawn4P,
		lastSpawn: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bests != nil {
		if best, err := g.bests.Best(); err == nil && best > 0 {
			g.best = best
		}
	}
	g.Reset()
	return g
}

// Reset clears the board, zeroes the score, and spawns the two opening
// tiles. The best score survives across games.
func (g *Game) Reset() {
	g.board.Fill(0)
	g.score = 0
	g.spawnTile()
	g.spawnTile()
}

// Move applies a move in the given direction. If any row or column changed,
// the gained score is added, the best score is raised (and persisted) when
// exceeded, and exactly one new tile is spawned. Reports whether the board
// changed; an ineffective move has no side effects at all.
func (g *Game) Move(d Direction) bool {
	horizontal := d == DirLeft || d == DirRight

	moved := false
	gained := 0
	for i := range BoardSize {
		var line Row
		if horizontal {
			line = g.board.Row(i)
		} else {
			line = g.board.Col(i)
		}

		next, score := g.table.Slide(line, d)
		gained += score
		if next == line {
			continue
		}
		if horizontal {
			g.board.SetRow(i, next)
		} else {
			g.board.SetCol(i, next)
		}
		moved = true
	}

	if !moved {
		return false
	}

	g.score += gained
	if g.score > g.best {
		g.best = g.score
		if g.bests != nil {
			g.bests.SaveBest(g.best) //nolint:errcheck // Best-effort save, game continues regardless
		}
	}
	g.spawnTile()
	return true
}

// spawnTile places one tile in a uniformly random empty cell: exponent 1
// with probability 1-spawn4, exponent 2 otherwise. A full board is a
// silent no-op, only reachable by callers mutating the board directly.
func (g *Game) spawnTile() {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return
	}
	idx := empty[g.rng.Intn(len(empty))]
	exp := uint8(spawnSmallExp)
	if g.rng.Float64() < g.spawn4 {
		exp = spawnLargeExp
	}
	g.board.cells[idx] = exp
	g.lastSpawn = idx
}

// Board returns the board. Renderers must treat it as read-only.
func (g *Game) Board() *Board {
	return &g.board
}

// Score returns the running score for the current game.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score seen across games.
func (g *Game) Best() int {
	return g.best
}

// Over reports whether no legal move remains.
func (g *Game) Over() bool {
	return !g.board.HasMove()
}

// LastSpawn returns the coordinates of the most recently spawned tile.
// ok is false before the first spawn.
func (g *Game) LastSpawn() (x, y int, ok bool) {
	if g.lastSpawn < 0 {
		return 0, 0, false
	}
	return g.lastSpawn % BoardSize, g.lastSpawn / BoardSize, true
}
