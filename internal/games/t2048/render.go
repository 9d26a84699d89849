package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = BoardSize*cellWidth + 1
	boardH    = BoardSize*cellHeight + 1
	hudHeight = 3

	// Minimum size: HUD + board + controls line
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

const (
	controlsPlaying  = "WASD/Arrows: Move | R: Restart | O: Quit"
	controlsGameOver = "R: Restart | O: Quit | GAME OVER"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	controls := controlsPlaying
	if g.phase == PhaseGameOver {
		controls = controlsGameOver
	}
	dst.DrawTextCentered(boardY+boardH+1, controls)

	if g.phase == PhaseGameOver {
		g.drawOverlay(dst, boardX+boardW/2, boardY+boardH/2,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.board.Score()),
			fmt.Sprintf("Max tile: %d", g.board.MaxTile()),
		)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCentered(0, "=== 2048 ===")

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	if g.showMoves {
		movesStr := fmt.Sprintf("Move: %4d", g.moves)
		dst.DrawText(boardX+boardW-len(movesStr), 1, movesStr)
	}
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := range BoardSize {
		for x := range BoardSize {
			val := g.board[y][x]

			valStr := "-"
			color := core.ColorGray
			if val != 0 {
				valStr = strconv.Itoa(val)
				color = tileColor(val)
			}
			if !g.colors {
				color = core.ColorDefault
			}

			// Center the value in the cell interior
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// gridCorner returns the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// tileColor picks a color by tile value; the palette repeats past 2048.
func tileColor(val int) core.Color {
	palette := []core.Color{
		core.ColorWhite,         // 2
		core.ColorYellow,        // 4
		core.ColorOrange,        // 8
		core.ColorBrightRed,     // 16
		core.ColorRed,           // 32
		core.ColorMagenta,       // 64
		core.ColorBrightYellow,  // 128
		core.ColorGreen,         // 256
		core.ColorCyan,          // 512
		core.ColorBlue,          // 1024
		core.ColorBrightMagenta, // 2048
	}

	exp := 0
	for v := val; v > 2; v >>= 1 {
		exp++
	}
	return palette[exp%len(palette)]
}

// drawOverlay draws a centered boxed message.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
