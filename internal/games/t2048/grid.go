package t2048

import "fmt"

// BoardSize is the board dimension. It is fixed at compile time.
const BoardSize = 4

// Grid is the square 2048 board. Zero is an empty cell; every other value
// is a power of two no smaller than 2.
type Grid [BoardSize][BoardSize]int

// Pos is a cell coordinate on the grid.
type Pos struct {
	Row, Col int
}

// GetRow returns a copy of row i, left to right.
func GetRow(g *Grid, i int) []int {
	checkIndex(i)
	row := make([]int, BoardSize)
	copy(row, g[i][:])
	return row
}

// GetCol returns a copy of column i, top to bottom.
func GetCol(g *Grid, i int) []int {
	checkIndex(i)
	col := make([]int, BoardSize)
	for r := range BoardSize {
		col[r] = g[r][i]
	}
	return col
}

// SetRow overwrites row i with values, in the order GetRow returns them.
func SetRow(g *Grid, i int, values []int) {
	checkIndex(i)
	checkLen(values)
	copy(g[i][:], values)
}

// SetCol overwrites column i with values, in the order GetCol returns them.
func SetCol(g *Grid, i int, values []int) {
	checkIndex(i)
	checkLen(values)
	for r := range BoardSize {
		g[r][i] = values[r]
	}
}

// checkIndex panics on a row/column index outside the board.
func checkIndex(i int) {
	if i < 0 || i >= BoardSize {
		panic(fmt.Sprintf("t2048: line index %d out of range [0,%d)", i, BoardSize))
	}
}

// checkLen panics when a vector does not span the board.
func checkLen(values []int) {
	if len(values) != BoardSize {
		panic(fmt.Sprintf("t2048: vector length %d, want %d", len(values), BoardSize))
	}
}

// Score returns the sum of all tiles on the board.
func (g *Grid) Score() int {
	total := 0
	for r := range BoardSize {
		for c := range BoardSize {
			total += g[r][c]
		}
	}
	return total
}

// MaxTile returns the highest tile on the board.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, g[r][c])
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func (g *Grid) TileCount() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// EmptyCells returns the empty cells in row-major order.
func (g *Grid) EmptyCells() []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if g[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}
