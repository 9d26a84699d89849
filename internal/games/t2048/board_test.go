package t2048

import (
	"math"
	"math/rand"
	"testing"
)

// fixedRand returns the same draws every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int { return r.n }

func TestMakeBoard(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := MakeBoard(rand.New(rand.NewSource(seed)))

		if n := g.TileCount(); n != 2 {
			t.Fatalf("seed %d: MakeBoard() has %d tiles, want 2", seed, n)
		}
		if n := len(g.EmptyCells()); n != BoardSize*BoardSize-2 {
			t.Fatalf("seed %d: MakeBoard() has %d empty cells", seed, n)
		}
		for r := range BoardSize {
			for c := range BoardSize {
				if v := g[r][c]; v != 0 && v != 2 && v != 4 {
					t.Fatalf("seed %d: unexpected starting tile %d", seed, v)
				}
			}
		}
	}
}

func TestMakeBoardDeterministic(t *testing.T) {
	a := MakeBoard(rand.New(rand.NewSource(12345)))
	b := MakeBoard(rand.New(rand.NewSource(12345)))

	if *a != *b {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", *a, *b)
	}
}

func TestPopulateValueThreshold(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		want   int
	}{
		{"low sample", 0.0, 2},
		{"boundary is a two", 0.9, 2},
		{"above boundary", 0.95, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grid{}
			if !PopulateAnEmptyCell(&g, fixedRand{f: tt.sample, n: 0}) {
				t.Fatal("PopulateAnEmptyCell on an empty board should succeed")
			}
			if g[0][0] != tt.want {
				t.Errorf("placed %d, want %d", g[0][0], tt.want)
			}
		})
	}
}

func TestPopulateOnlyEmptyCells(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	}

	// Intn(1) can only return 0, so the single empty cell is chosen.
	if !PopulateAnEmptyCell(&g, fixedRand{f: 0.5, n: 0}) {
		t.Fatal("PopulateAnEmptyCell should fill the last empty cell")
	}
	if g[2][2] != 2 {
		t.Errorf("g[2][2] = %d, want 2", g[2][2])
	}
}

func TestPopulateFullBoard(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	before := g

	if PopulateAnEmptyCell(&g, rand.New(rand.NewSource(1))) {
		t.Error("PopulateAnEmptyCell on a full board should return false")
	}
	if g != before {
		t.Error("PopulateAnEmptyCell on a full board should not mutate it")
	}
}

func TestPopulateDistribution(t *testing.T) {
	const trials = 40000
	rng := rand.New(rand.NewSource(7))

	fours := 0
	var hits [BoardSize][BoardSize]int

	for range trials {
		g := Grid{}
		PopulateAnEmptyCell(&g, rng)
		for r := range BoardSize {
			for c := range BoardSize {
				if g[r][c] == 0 {
					continue
				}
				hits[r][c]++
				if g[r][c] == 4 {
					fours++
				}
			}
		}
	}

	fourRate := float64(fours) / trials
	if math.Abs(fourRate-0.10) > 0.01 {
		t.Errorf("4 spawned in %.3f of calls, want close to 0.10", fourRate)
	}

	expected := float64(trials) / (BoardSize * BoardSize)
	for r := range BoardSize {
		for c := range BoardSize {
			if math.Abs(float64(hits[r][c])-expected) > expected*0.15 {
				t.Errorf("cell (%d,%d) chosen %d times, want close to %.0f", r, c, hits[r][c], expected)
			}
		}
	}
}

func TestMakeMove(t *testing.T) {
	start := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		start    Grid
		expected Grid
	}{
		{
			dir:   DirLeft,
			start: start,
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			dir:   DirRight,
			start: start,
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			dir: DirUp,
			start: Grid{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Grid{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: DirDown,
			start: Grid{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Grid{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := tt.start
			if !MakeMove(tt.dir, &g) {
				t.Errorf("MakeMove(%s) should indicate board changed", tt.dir)
			}
			if g != tt.expected {
				t.Errorf("MakeMove(%s): got\n%v\nwant\n%v", tt.dir, g, tt.expected)
			}
		})
	}
}

func TestMakeMoveNoChange(t *testing.T) {
	g := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := g

	if MakeMove(DirLeft, &g) {
		t.Error("MakeMove(left) should not change already left-aligned tiles")
	}
	if MakeMove(DirUp, &g) {
		t.Error("MakeMove(up) should not change tiles already on the top row")
	}
	if g != before {
		t.Errorf("no-op moves should leave the board intact:\n%v", g)
	}
}

func TestMakeMoveInvalidDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MakeMove with an unknown direction should panic")
		}
	}()
	MakeMove(Direction(42), &Grid{})
}

func TestMakeMovePreservesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for i := range 500 {
		var g Grid
		for r := range BoardSize {
			for c := range BoardSize {
				if rng.Intn(3) > 0 {
					g[r][c] = 1 << (1 + rng.Intn(4))
				}
			}
		}

		dir := dirs[i%len(dirs)]
		sumBefore, tilesBefore := g.Score(), g.TileCount()
		MakeMove(dir, &g)

		if g.Score() != sumBefore {
			t.Fatalf("MakeMove(%s) changed the sum from %d to %d", dir, sumBefore, g.Score())
		}
		if g.TileCount() > tilesBefore {
			t.Fatalf("MakeMove(%s) increased tile count from %d to %d", dir, tilesBefore, g.TileCount())
		}
	}
}

func TestIsFull(t *testing.T) {
	full := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if !IsFull(&full) {
		t.Error("board without zeros should be full")
	}

	full[3][3] = 0
	if IsFull(&full) {
		t.Error("board with an empty cell should not be full")
	}
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name  string
		board Grid
		want  bool
	}{
		{
			name: "full with no merges",
			board: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full with horizontal pair",
			board: Grid{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full with vertical pair",
			board: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 256},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "empty cell",
			board: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "checkerboard",
			board: Grid{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.board
			if got := GameOver(&g); got != tt.want {
				t.Errorf("GameOver() = %v, want %v", got, tt.want)
			}
			if g != tt.board {
				t.Error("GameOver should not mutate the board")
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirUp.String() != "up" || DirRight.String() != "right" {
		t.Error("direction names should be lowercase words")
	}
	if Direction(9).String() != "Direction(9)" {
		t.Errorf("unknown direction String() = %q", Direction(9).String())
	}
}
