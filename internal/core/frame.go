package core

import (
	"strings"
	"unicode/utf8"
)

// Frame is an immutable block of glyphs loaded from art files.
// Lines may be shorter than Cols; missing cells are blank.
type Frame struct {
	Rows  int
	Cols  int
	Lines []string
}

// ParseFrame splits text into lines and measures its extent.
// A single trailing line break does not add an empty row.
func ParseFrame(text string) *Frame {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	cols := 0
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}

	return &Frame{
		Rows:  len(lines),
		Cols:  cols,
		Lines: lines,
	}
}

// TextFrame builds a single-row frame, used for HUD strings.
func TextFrame(text string) *Frame {
	return &Frame{
		Rows:  1,
		Cols:  utf8.RuneCountInString(text),
		Lines: []string{text},
	}
}

// Size returns the frame extent as (rows, cols).
func (f *Frame) Size() (rows, cols int) {
	return f.Rows, f.Cols
}

// String joins the lines back into text.
func (f *Frame) String() string {
	return strings.Join(f.Lines, "\n")
}
