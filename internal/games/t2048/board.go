package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
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
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

const (
	startingTiles = 2
	chanceOfTwo   = 0.9 // 90% 2, 10% 4
)

// Rand is the random source used to spawn tiles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// MakeBoard returns a fresh board holding two spawned tiles.
func MakeBoard(rng Rand) *Grid {
	g := &Grid{}
	for range startingTiles {
		PopulateAnEmptyCell(g, rng)
	}
	return g
}

// PopulateAnEmptyCell places a 2 (90%) or a 4 (10%) on an empty cell chosen
// uniformly at random. The value is drawn before the position.
// Returns false, leaving the board untouched, if the board is full.
func PopulateAnEmptyCell(g *Grid, rng Rand) bool {
	if IsFull(g) {
		return false
	}

	value := 4
	if rng.Float64() <= chanceOfTwo {
		value = 2
	}

	empty := g.EmptyCells()
	cell := empty[rng.Intn(len(empty))]
	g[cell.Row][cell.Col] = value

	return true
}

// MakeMove slides every row or column of g in the given direction, merging
// equal neighbours. The board is updated in place.
// Returns true if any line changed.
func MakeMove(dir Direction, g *Grid) bool {
	changed := false

	switch dir {
	case DirUp, DirDown:
		for col := range BoardSize {
			line := GetCol(g, col)
			if ShiftCombineShift(line, dir == DirUp) {
				changed = true
			}
			SetCol(g, col, line)
		}
	case DirLeft, DirRight:
		for row := range BoardSize {
			line := GetRow(g, row)
			if ShiftCombineShift(line, dir == DirLeft) {
				changed = true
			}
			SetRow(g, row, line)
		}
	default:
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}

	return changed
}

// IsFull returns true if no cell is empty.
func IsFull(g *Grid) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// GameOver returns true if no move can change the board: it is full and no
// row or column holds a combinable pair. Only copies are inspected.
func GameOver(g *Grid) bool {
	if !IsFull(g) {
		return false
	}

	for i := range BoardSize {
		if CombineLeft(GetRow(g, i)) || CombineLeft(GetCol(g, i)) {
			return false
		}
	}

	return true
}
