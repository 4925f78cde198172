package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

const (
	tileWidth  = 7 // Width of each tile
	tileHeight = 3 // Height of each tile
	tileGap    = 1 // Board color between tiles
	hudHeight  = 3 // Title, stats and a blank line

	boardWidth  = engine.Size*tileWidth + (engine.Size+1)*tileGap
	boardHeight = engine.Size*tileHeight + (engine.Size+1)*tileGap
)

// Minimum screen size: HUD, board and the controls line.
const (
	MinWidth  = boardWidth + 2
	MinHeight = hudHeight + boardHeight + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardWidth) / 2
	boardY := hudHeight
	board := core.NewRect(boardX, boardY, boardWidth, boardHeight)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)

	dst.DrawTextCentered(board.Bottom()+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
}

// renderHUD draws the title, move counter and max tile.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawStyledText(board.X+(board.W-len(title))/2, 0, title, core.Style{Bold: true})

	dst.DrawText(board.X, 1, fmt.Sprintf("Moves: %d", g.eng.MoveCount()))

	maxStr := fmt.Sprintf("Max: %d", g.eng.MaxTileValue())
	dst.DrawText(core.Max(board.X, board.Right()-len(maxStr)), 1, maxStr)
}

// renderBoard draws the 4x4 grid of colored tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.FillRect(board, core.Cell{Rune: ' ', Style: g.theme.BoardStyle()})

	b := g.eng.Board()
	for y := range engine.Size {
		for x := range engine.Size {
			r := tileRect(board, x, y)
			val := b.At(x, y)
			st := g.theme.TileStyle(val)

			dst.FillRect(r, core.Cell{Rune: ' ', Style: st})
			if val.IsEmpty() {
				continue
			}

			// Center the value in the tile
			valStr := strconv.Itoa(int(val))
			padLeft := core.Max(0, (tileWidth-len(valStr))/2)
			dst.DrawStyledText(r.X+padLeft, r.Y+tileHeight/2, valStr, st)
		}
	}
}

// tileRect returns the screen area of the tile at board position (x, y).
func tileRect(board core.Rect, x, y int) core.Rect {
	return core.NewRect(
		board.X+tileGap+x*(tileWidth+tileGap),
		board.Y+tileGap+y*(tileHeight+tileGap),
		tileWidth,
		tileHeight,
	)
}

// renderOverlays draws confirmation prompts and end-of-game messages.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.eng.IsWon():
		g.drawOverlay(dst, board, "You won!", "Press r to play again")
	case g.eng.IsLost():
		g.drawOverlay(dst, board, "Game over!", "You lose!", "Press r to play again")
	case g.quitArmed && g.restartArmed:
		g.drawOverlay(dst, board, "Are you sure?", "Press q again to quit", "Press r again to restart")
	case g.quitArmed:
		g.drawOverlay(dst, board, "Are you sure?", "Press q again to quit")
	case g.restartArmed:
		g.drawOverlay(dst, board, "Are you sure?", "Press r again to restart")
	}
}

// drawOverlay draws a centered message box over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	centerX, centerY := board.Center()
	boxW := core.Min(maxLen+4, dst.Width())
	box := core.NewRect(centerX-boxW/2, centerY-(len(lines)+2)/2, boxW, len(lines)+2)
	st := g.theme.OverlayStyle()

	// Clear area behind overlay
	dst.FillRect(box, core.Cell{Rune: ' ', Style: st})
	dst.DrawBox(box, st)

	for i, line := range lines {
		dst.DrawStyledText(box.X+(box.W-len(line))/2, box.Y+1+i, line, st)
	}
}
