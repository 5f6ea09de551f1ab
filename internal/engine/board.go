package engine

import "github.com/vovakirdan/space-garbage/internal/core"

// HUDRows is the height of the year box, its own border included.
const HUDRows = 3

// Board is the double-buffered drawing surface the tasks share.
// Tasks draw into the back buffer, clipped to the area inside the border.
// Flush re-stamps the border and the HUD box and publishes the result to
// the front buffer, which is what the terminal renders.
type Board struct {
	back     *core.Screen
	front    *core.Screen
	interior core.Rect
	hud      core.Rect
	flushes  int

	// OnFlush, when set, runs after every flush with the published buffer.
	OnFlush func(front *core.Screen)
}

// NewBoard creates a board of the given size with a bordered playfield and a
// HUD box of hudWidth columns in the bottom-right corner.
func NewBoard(rows, cols, hudWidth int) *Board {
	b := &Board{
		back:     core.NewScreen(cols, rows),
		front:    core.NewScreen(cols, rows),
		interior: core.NewRect(1, 1, cols-2, rows-2),
	}
	w := core.Clamp(hudWidth, 0, cols)
	h := min(HUDRows, rows)
	b.hud = core.NewRect(cols-w, rows-h, w, h)
	b.stampChrome()
	b.front.CopyFrom(b.back)
	return b
}

// DrawFrame implements Surface.
func (b *Board) DrawFrame(row, col float64, f *core.Frame, erase bool) {
	b.back.DrawFrameClipped(row, col, f, erase, b.interior)
}

// DrawGlyph implements Surface.
func (b *Board) DrawGlyph(row, col int, r rune, attr core.Attr) {
	if !b.interior.Contains(col, row) {
		return
	}
	b.back.SetCell(col, row, core.Cell{Rune: r, Attr: attr})
}

// Size implements Surface.
func (b *Board) Size() (rows, cols int) {
	return b.back.Height(), b.back.Width()
}

// Flush implements Surface.
func (b *Board) Flush() {
	b.stampChrome()
	b.front.CopyFrom(b.back)
	b.flushes++
	if b.OnFlush != nil {
		b.OnFlush(b.front)
	}
}

// Front returns the last published buffer.
func (b *Board) Front() *core.Screen {
	return b.front
}

// Back returns the buffer tasks are currently drawing into.
func (b *Board) Back() *core.Screen {
	return b.back
}

// HUD returns the rectangle of the year box, border included.
func (b *Board) HUD() core.Rect {
	return b.hud
}

// Interior returns the drawable playfield inside the border.
func (b *Board) Interior() core.Rect {
	return b.interior
}

// Flushes returns how many times the board has been published.
func (b *Board) Flushes() int {
	return b.flushes
}

func (b *Board) stampChrome() {
	b.back.DrawBox(core.NewRect(0, 0, b.back.Width(), b.back.Height()))
	if b.hud.W >= 2 && b.hud.H >= 2 {
		b.back.DrawBox(b.hud)
	}
}
