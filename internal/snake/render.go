package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-plus/internal/core"
)

// Board glyphs.
const (
	glyphHead     = '@'
	glyphBody     = 'o'
	glyphFood     = '*'
	glyphBoost    = '$'
	glyphObstacle = '#'
)

// hudRows is the number of screen rows above the board box.
const hudRows = 1

// MinScreen returns the smallest screen that fits a board of the given size:
// one column per cell, a border box and the HUD row.
func MinScreen(gridW, gridH int) (w, h int) {
	return gridW + 2, gridH + 2 + hudRows
}

// cellWidth returns 2 when every cell can be drawn two columns wide, which
// keeps the board roughly square in a terminal.
func cellWidth(screenW, gridW int) int {
	if 2*gridW+2 <= screenW {
		return 2
	}
	return 1
}

// Render draws the snapshot onto dst.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	minW, minH := MinScreen(snap.GridW, snap.GridH)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst, minW, minH)
		return
	}

	cw := cellWidth(dst.Width(), snap.GridW)
	box := core.NewRect(0, 0, snap.GridW*cw+2, snap.GridH+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = hudRows + (dst.Height()-hudRows-box.H)/2

	renderHUD(dst, snap, box.X)
	dst.DrawBox(box, core.ColorWhite)

	put := func(c Cell, r rune, col core.Color) {
		x := box.X + 1 + c.X*cw
		y := box.Y + 1 + c.Y
		for i := range cw {
			dst.SetColor(x+i, y, r, col)
		}
	}

	for _, c := range snap.Obstacles {
		put(c, glyphObstacle, core.ColorGray)
	}
	for _, c := range snap.Foods {
		put(c, glyphFood, core.ColorBrightRed)
	}
	for _, c := range snap.Boosts {
		put(c, glyphBoost, core.ColorBrightYellow)
	}
	// Tail first so the head wins where cells overlap during a tick.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(snap.Snake[i], glyphHead, core.ColorBrightGreen)
		} else {
			put(snap.Snake[i], glyphBody, core.ColorGreen)
		}
	}

	switch snap.State {
	case StateIdle:
		renderOverlay(dst, "Ready", "Press an arrow key to start")
	case StateGameOver:
		renderOverlay(dst, fmt.Sprintf("Game over  Len %d", snap.Length()), "Play again? (Y/N)")
	}
}

// HUDText is the status line shown above the board.
func HUDText(snap Snapshot) string {
	hud := fmt.Sprintf("Len %d  FPS %d  D%d", snap.Length(), snap.Rate, snap.Level)
	if snap.Boosted() {
		hud += " BOOST"
	}
	return hud
}

func renderHUD(dst *core.Screen, snap Snapshot, x int) {
	color := core.ColorBrightWhite
	if snap.Boosted() {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColor(x, 0, HUDText(snap), color)
}

func renderTooSmall(dst *core.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Have %dx%d", dst.Width(), dst.Height()), core.ColorDefault)
}

// renderOverlay draws a framed two-line message in the middle of dst.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	r := dst.Bounds().Centered(min(w, dst.Width()), 5)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorDefault)
}

// Plain renders a snapshot to text without colors.
func Plain(snap Snapshot, screenW, screenH int) string {
	scr := core.NewScreen(screenW, screenH)
	Render(scr, snap)
	return scr.String()
}
