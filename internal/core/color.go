package core

// Attr is a display attribute for a screen cell.
// Stars pulse through these; everything else is drawn with AttrNormal.
type Attr uint8

// Cell attributes, from faintest to brightest.
const (
	AttrNormal Attr = iota
	AttrDim
	AttrBold
)

// String returns a human-readable name for the attribute.
func (a Attr) String() string {
	switch a {
	case AttrNormal:
		return "normal"
	case AttrDim:
		return "dim"
	case AttrBold:
		return "bold"
	default:
		return "unknown"
	}
}
