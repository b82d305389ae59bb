package engine

import (
	"errors"
	"testing"
)

var testTable = NewTable()

// memoryBest is an in-memory BestStore for tests.
type memoryBest struct {
	score int
	saves int
	fail  bool
}

func (m *memoryBest) Best() (int, error) {
	if m.fail {
		return 0, errors.New("load failed")
	}
	return m.score, nil
}

func (m *memoryBest) SaveBest(score int) error {
	m.saves++
	if m.fail {
		return errors.New("save failed")
	}
	if score > m.score {
		m.score = score
	}
	return nil
}

func countTiles(b *Board) int {
	return BoardSize*BoardSize - len(b.EmptyCells())
}

func TestNewGameOpeningDeal(t *testing.T) {
	g := NewGame(testTable, 42)

	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0", g.Score())
	}
	if n := countTiles(g.Board()); n != 2 {
		t.Errorf("opening tiles = %d, want 2", n)
	}
	for y := range BoardSize {
		for x := range BoardSize {
			exp := g.Board().Cell(x, y)
			if exp != 0 && exp != 1 && exp != 2 {
				t.Errorf("opening tile at (%d,%d) has exponent %d, want 1 or 2", x, y, exp)
			}
		}
	}
}

func TestResetKeepsBest(t *testing.T) {
	g := NewGame(testTable, 42)
	g.board.Fill(0)
	g.board.SetRow(0, Pack([4]uint8{1, 1, 0, 0}))
	g.Move(DirLeft)

	if g.Best() == 0 {
		t.Fatal("best should be raised by a scoring move")
	}
	best := g.Best()

	g.Reset()
	if g.Score() != 0 {
		t.Errorf("Score after Reset = %d, want 0", g.Score())
	}
	if g.Best() != best {
		t.Errorf("Best after Reset = %d, want %d", g.Best(), best)
	}
	if n := countTiles(g.Board()); n != 2 {
		t.Errorf("tiles after Reset = %d, want 2", n)
	}
}

func TestDeterministicSeed(t *testing.T) {
	g1 := NewGame(testTable, 12345)
	g2 := NewGame(testTable, 12345)

	if g1.board != g2.board {
		t.Errorf("same seed should deal the same board:\n%v\nvs\n%v",
			g1.board.cells, g2.board.cells)
	}
}

func TestMoveDirections(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		grid [4][4]uint8
		want [4][4]uint8
	}{
		{
			name: "left",
			dir:  DirLeft,
			grid: [4][4]uint8{
				{1, 1, 0, 0},
				{2, 0, 2, 0},
				{1, 1, 1, 1},
				{0, 0, 0, 1},
			},
			want: [4][4]uint8{
				{2, 0, 0, 0},
				{3, 0, 0, 0},
				{2, 2, 0, 0},
				{1, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  DirRight,
			grid: [4][4]uint8{
				{1, 1, 0, 0},
				{2, 0, 2, 0},
				{1, 1, 1, 1},
				{0, 0, 0, 1},
			},
			want: [4][4]uint8{
				{0, 0, 0, 2},
				{0, 0, 0, 3},
				{0, 0, 2, 2},
				{0, 0, 0, 1},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			grid: [4][4]uint8{
				{1, 2, 1, 0},
				{1, 0, 1, 0},
				{0, 2, 1, 0},
				{0, 0, 1, 1},
			},
			want: [4][4]uint8{
				{2, 3, 2, 1},
				{0, 0, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			grid: [4][4]uint8{
				{1, 2, 1, 1},
				{1, 0, 1, 0},
				{0, 2, 1, 0},
				{0, 0, 1, 0},
			},
			want: [4][4]uint8{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 2, 0},
				{2, 3, 2, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(testTable, 1)
			setBoard(&g.board, tt.grid)

			if !g.Move(tt.dir) {
				t.Fatal("Move should report a change")
			}

			// The slid result plus exactly one spawned tile.
			spawnX, spawnY, ok := g.LastSpawn()
			if !ok {
				t.Fatal("LastSpawn should report the spawned tile")
			}
			var want Board
			setBoard(&want, tt.want)
			for y := range BoardSize {
				for x := range BoardSize {
					if x == spawnX && y == spawnY {
						continue
					}
					if g.board.Cell(x, y) != want.Cell(x, y) {
						t.Errorf("cell (%d,%d) = %d, want %d",
							x, y, g.board.Cell(x, y), want.Cell(x, y))
					}
				}
			}
			if want.Cell(spawnX, spawnY) != 0 {
				t.Errorf("spawn landed on occupied cell (%d,%d)", spawnX, spawnY)
			}
		})
	}
}

func TestMoveScoring(t *testing.T) {
	g := NewGame(testTable, 7)
	setBoard(&g.board, [4][4]uint8{
		{1, 1, 0, 0},
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !g.Move(DirLeft) {
		t.Fatal("Move should report a change")
	}
	// 2^2 + 2^3 = 4 + 8.
	if g.Score() != 12 {
		t.Errorf("Score = %d, want 12", g.Score())
	}
	if g.Best() != 12 {
		t.Errorf("Best = %d, want 12", g.Best())
	}
}

func TestIneffectiveMoveHasNoSideEffects(t *testing.T) {
	g := NewGame(testTable, 7)
	setBoard(&g.board, [4][4]uint8{
		{2, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.score = 100
	g.best = 100
	before := g.board

	if g.Move(DirLeft) {
		t.Fatal("already left-aligned board should not change")
	}
	if g.board != before {
		t.Error("board mutated by ineffective move")
	}
	if g.Score() != 100 || g.Best() != 100 {
		t.Errorf("score/best changed: %d/%d, want 100/100", g.Score(), g.Best())
	}
	if countTiles(&g.board) != 2 {
		t.Error("ineffective move must not spawn a tile")
	}
}

func TestMoveSpawnsExactlyOneTile(t *testing.T) {
	g := NewGame(testTable, 99)
	setBoard(&g.board, [4][4]uint8{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
	})

	if !g.Move(DirLeft) {
		t.Fatal("Move should report a change")
	}
	if got := countTiles(&g.board); got != 3 {
		t.Errorf("tiles after move = %d, want 3", got)
	}
}

func TestSpawnOnFullBoardIsNoop(t *testing.T) {
	g := NewGame(testTable, 3)
	g.board.Fill(1)
	before := g.board

	g.spawnTile()
	if g.board != before {
		t.Error("spawn on a full board must not change anything")
	}
}

func TestBestStoreLoadedAndSaved(t *testing.T) {
	store := &memoryBest{score: 50}
	g := NewGame(testTable, 7, WithBestStore(store))

	if g.Best() != 50 {
		t.Errorf("Best = %d, want stored 50", g.Best())
	}

	setBoard(&g.board, [4][4]uint8{
		{5, 5, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Move(DirLeft) // gains 64, exceeds 50

	if store.score != 64 {
		t.Errorf("stored best = %d, want 64", store.score)
	}
	if store.saves != 1 {
		t.Errorf("SaveBest called %d times, want 1", store.saves)
	}
}

func TestBestStoreFailureIsIgnored(t *testing.T) {
	store := &memoryBest{fail: true}
	g := NewGame(testTable, 7, WithBestStore(store))

	setBoard(&g.board, [4][4]uint8{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if !g.Move(DirLeft) {
		t.Fatal("Move should succeed despite store failure")
	}
	if g.Best() != 4 {
		t.Errorf("in-memory best = %d, want 4", g.Best())
	}
}

func TestSpawn4Probability(t *testing.T) {
	// With probability 1 every spawn is a 4.
	g := NewGame(testTable, 11, WithSpawn4Probability(1.0))
	for y := range BoardSize {
		for x := range BoardSize {
			if exp := g.Board().Cell(x, y); exp != 0 && exp != 2 {
				t.Errorf("spawned exponent %d at (%d,%d), want 2", exp, x, y)
			}
		}
	}
}

func TestOver(t *testing.T) {
	g := NewGame(testTable, 5)
	if g.Over() {
		t.Error("fresh game should not be over")
	}

	setBoard(&g.board, [4][4]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 1, 2},
	})
	if !g.Over() {
		t.Error("full board with no pairs should be over")
	}
}
