package engine

import "github.com/vovakirdan/space-garbage/internal/core"

type starPhase struct {
	attr core.Attr
	hold int // ticks
}

// Star is a background glyph that cycles dim, normal, bold, normal forever.
type Star struct {
	row, col int
	glyph    rune
	phases   [4]starPhase
	phase    int
	left     int
}

// NewStar creates a star at a fixed cell. The dim phase lasts dimTicks plus
// offset ticks, which de-synchronises stars from one another.
func NewStar(row, col int, glyph rune, dimTicks, offset int) *Star {
	return &Star{
		row:   row,
		col:   col,
		glyph: glyph,
		phases: [4]starPhase{
			{attr: core.AttrDim, hold: dimTicks + offset},
			{attr: core.AttrNormal, hold: 3},
			{attr: core.AttrBold, hold: 5},
			{attr: core.AttrNormal, hold: 3},
		},
		phase: -1,
	}
}

// Kind implements Task.
func (s *Star) Kind() Kind { return KindStar }

// Step implements Task.
func (s *Star) Step(w *World) (Status, error) {
	for s.left <= 0 {
		s.phase = (s.phase + 1) % len(s.phases)
		p := s.phases[s.phase]
		w.Surface.DrawGlyph(s.row, s.col, s.glyph, p.attr)
		s.left = p.hold
	}
	s.left--
	return Continue, nil
}

// Attr returns the attribute the star is currently shown with.
func (s *Star) Attr() core.Attr {
	if s.phase < 0 {
		return core.AttrDim
	}
	return s.phases[s.phase].attr
}

// NewStars scatters n stars over the playfield interior using the world's
// random source.
func NewStars(w *World, n int) []*Star {
	cfg := w.Config.Stars
	symbols := []rune(cfg.Symbols)
	if n <= 0 || len(symbols) == 0 {
		return nil
	}
	rows, cols := w.Surface.Size()
	pad := w.Config.Padding

	// Inclusive cell range strictly inside the border.
	lastRow := max(rows-pad-1, pad+1)
	lastCol := max(cols-pad-1, pad+1)

	stars := make([]*Star, 0, n)
	for range n {
		row := pad + w.Rand.Intn(lastRow-pad+1)
		col := pad + w.Rand.Intn(lastCol-pad+1)
		glyph := symbols[w.Rand.Intn(len(symbols))]
		offset := w.Rand.Intn(cfg.MaxOffset + 1)
		stars = append(stars, NewStar(row, col, glyph, cfg.DimTicks, offset))
	}
	return stars
}
