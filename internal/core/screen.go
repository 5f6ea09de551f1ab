package core

import (
	"strings"
)

// Cell is a single screen position: a glyph and its display attribute.
type Cell struct {
	Rune rune
	Attr Attr
}

// blank is the cell every erase writes.
var blank = Cell{Rune: ' ', Attr: AttrNormal}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples animation from the terminal, allowing tasks to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// CopyFrom overwrites this screen with the contents of src, taking on its
// dimensions if they differ.
func (s *Screen) CopyFrom(src *Screen) {
	if s.width != src.width || s.height != src.height {
		s.width, s.height = src.width, src.height
		s.allocate()
	}
	for y := range s.cells {
		copy(s.cells[y], src.cells[y])
	}
}

// Set places a rune at the given position with the normal attribute.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawFrame draws a frame with its top-left corner at (row, col), rounded to
// the nearest cell. Spaces in the frame are transparent. With erase set, every
// cell the frame would paint is blanked instead, so drawing and then erasing
// at the same position restores a blank background.
func (s *Screen) DrawFrame(row, col float64, f *Frame, erase bool) {
	s.DrawFrameClipped(row, col, f, erase, NewRect(0, 0, s.width, s.height))
}

// DrawFrameClipped is DrawFrame restricted to the cells inside clip.
func (s *Screen) DrawFrameClipped(row, col float64, f *Frame, erase bool, clip Rect) {
	if f == nil {
		return
	}
	startRow, startCol := Round(row), Round(col)

	for dy, line := range f.Lines {
		y := startRow + dy
		if y < clip.Y {
			continue
		}
		if y >= clip.Bottom() {
			break
		}

		dx := 0
		for _, r := range line {
			x := startCol + dx
			dx++
			if x < clip.X {
				continue
			}
			if x >= clip.Right() {
				break
			}
			if r == ' ' {
				continue
			}
			if erase {
				s.SetCell(x, y, blank)
			} else {
				s.SetCell(x, y, Cell{Rune: r})
			}
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to a plain string, attributes dropped.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
