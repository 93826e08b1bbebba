package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the current match state to the screen.
func (m *Match) Render(dst *core.Screen) {
	Render(dst, m.Snapshot())
}

// Render draws a snapshot to the screen. Row 0 holds the score bar and the
// remaining rows show the playfield scaled to fit.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 1 || h < 2 || snap.FieldW <= 0 || snap.FieldH <= 0 {
		return
	}
	v := viewport{
		sx:   float64(w) / snap.FieldW,
		sy:   float64(h-1) / snap.FieldH,
		cols: w,
		rows: h - 1,
	}

	// Draw center line (net)
	centerX := w / 2
	for y := 1; y < h; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	// Draw paddles
	dst.DrawRect(v.rect(snap.Player), PaddleChar, core.ColorCyan)
	dst.DrawRect(v.rect(snap.AI), PaddleChar, core.ColorRed)

	// Draw ball at its center cell
	bx, by := v.point(snap.Ball.X+snap.Ball.W/2, snap.Ball.Y+snap.Ball.H/2)
	dst.SetColored(bx, by, BallChar, core.ColorYellow)

	// Draw score bar
	playerText := fmt.Sprintf("%d", snap.PlayerScore)
	aiText := fmt.Sprintf("%d", snap.AIScore)
	dst.DrawTextColored(w/4-len(playerText)/2, 0, playerText, core.ColorBrightWhite)
	dst.DrawTextColored(w*3/4-len(aiText)/2, 0, aiText, core.ColorBrightWhite)
	dst.DrawText(1, 0, "PLAYER")
	dst.DrawText(w-3, 0, "AI")
	dst.DrawTextCentered(0, fmt.Sprintf("best of %d", snap.BestOf), core.ColorGray)

	if snap.GameOver {
		DrawMessage(dst, snap.WinnerText,
			"Press SPACE to Play Again",
			"3/5/7: new best-of  |  Q: quit",
		)
	}
}

// DrawMessage draws a boxed message in the center of the screen.
func DrawMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	// Draw text
	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len([]rune(l)))/2, box.Y+3+i, l)
	}
}

// viewport maps logical playfield units to screen cells below the score bar.
type viewport struct {
	sx, sy     float64
	cols, rows int
}

// point maps a logical position to a cell inside the playfield.
func (v viewport) point(x, y float64) (int, int) {
	cx := core.Clamp(int(x*v.sx), 0, v.cols-1)
	cy := core.Clamp(int(y*v.sy), 0, v.rows-1)
	return cx, cy + 1
}

// rect maps a logical box to cells, never smaller than one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x, y := v.point(b.X, b.Y)
	cw := max(1, int(math.Round(b.W*v.sx)))
	ch := max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x, y, cw, ch)
}
