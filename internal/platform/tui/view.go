package tui

import (
	"fmt"
	"strconv"

	"github.com/KhushveerS/shift2048/internal/core"
	"github.com/KhushveerS/shift2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3

	// Minimum screen size for the board plus HUD and controls.
	minScreenW = engine.BoardSize*cellWidth + 1 + 2
	minScreenH = engine.BoardSize*cellHeight + 1 + hudHeight + 3
)

// render draws the full frame into the screen buffer.
func (m *Model) render() {
	dst := m.screen
	dst.Clear()

	if m.tooSmall {
		m.renderTooSmall(dst)
		return
	}

	boardW := engine.BoardSize*cellWidth + 1  // +1 for right border
	boardH := engine.BoardSize*cellHeight + 1 // +1 for bottom border

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	m.renderHUD(dst, boardX, boardW)
	m.renderBoard(dst, boardX, boardY)
	m.renderOverlays(dst, boardX, boardY, boardW, boardH)

	controls := "Arrows/WASD/HJKL: Move | R: Restart | Q: Quit"
	ctrlX := (dst.Width() - len(controls)) / 2
	dst.DrawTextColored(ctrlX, boardY+boardH+1, controls, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (m *Model) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (dst.Width() - len(msg)) / 2
	y := dst.Height() / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (dst.Width() - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title and score line.
func (m *Model) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightWhite)

	scoreStr := fmt.Sprintf("Score: %d", m.game.Score())
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", m.game.Best())
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX {
		bestX = boardX
	}
	dst.DrawText(bestX, 1, bestStr)

	maxStr := fmt.Sprintf("Max: %d", m.game.Board().MaxTile())
	maxX := boardX + (boardW-len(maxStr))/2
	dst.DrawTextColored(maxX, 2, maxStr, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (m *Model) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Grid borders
	for y := range engine.BoardSize + 1 {
		for x := range engine.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.BoardSize:
				corner = '┐'
			case y == engine.BoardSize && x == 0:
				corner = '└'
			case y == engine.BoardSize && x == engine.BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < engine.BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// Tiles
	board := m.game.Board()
	for y := range engine.BoardSize {
		for x := range engine.BoardSize {
			val := board.Value(x, y)
			if val == 0 {
				continue
			}

			// While a freshly spawned tile pops, hide its value for the
			// first half of the animation so it appears to grow in.
			if m.animating && x == m.popX && y == m.popY && m.animTicks < m.gameCfg.Animation.PopTicks/2 {
				cellX := boardX + x*cellWidth + 1
				cellY := boardY + y*cellHeight + 1
				padLeft := (cellWidth - 1 - 1) / 2
				dst.SetColored(cellX+padLeft, cellY, '·', tileColor(val))
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (m *Model) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if m.won {
		tileStr := fmt.Sprintf("You made %d!", m.gameCfg.Win.Tile)
		drawOverlay(dst, centerX, centerY, "YOU WIN!", tileStr, "Enter: keep playing | R: restart")
		return
	}

	if m.game.Over() {
		maxStr := fmt.Sprintf("Max tile: %d", m.game.Board().MaxTile())
		drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear the area behind the overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
