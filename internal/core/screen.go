package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
// Rows whose content differs from what it was at the last MarkClean are
// reported dirty.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	dirty  []bool
	clean  [][]Cell // row contents at the last MarkClean; nil until then
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage, blank and fully dirty.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	s.dirty = make([]bool, s.height)
	s.clean = nil
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
		s.dirty[y] = true
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

// Resize changes the screen dimensions, preserving content where possible.
// Every row is dirty afterwards.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.put(x, y, blankCell)
		}
	}
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.put(x, y, Cell{Rune: r, Color: c})
}

func (s *Screen) put(x, y int, c Cell) {
	if s.cells[y][x] == c {
		return
	}
	s.cells[y][x] = c
	s.dirty[y] = true
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// RowDirty reports whether row y differs from its content at the last MarkClean.
func (s *Screen) RowDirty(y int) bool {
	if y < 0 || y >= s.height || !s.dirty[y] {
		return false
	}
	if s.clean == nil {
		return true
	}
	for x, c := range s.cells[y] {
		if s.clean[y][x] != c {
			return true
		}
	}
	return false
}

// MarkClean records the current content as the baseline for RowDirty.
func (s *Screen) MarkClean() {
	if s.clean == nil {
		s.clean = make([][]Cell, s.height)
		for y := range s.clean {
			s.clean[y] = make([]Cell, s.width)
		}
	}
	for y := range s.dirty {
		if s.dirty[y] {
			copy(s.clean[y], s.cells[y])
			s.dirty[y] = false
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

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillScaled paints a playfield rectangle onto the screen, scaling a
// fieldW x fieldH pixel area onto the whole buffer. Any rectangle with a
// positive size covers at least one cell.
func (s *Screen) FillScaled(r Rect, fieldW, fieldH int, glyph rune, c Color) {
	if fieldW <= 0 || fieldH <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}

	x0, x1 := scaleSpan(r.X, r.Right(), s.width, fieldW)
	y0, y1 := scaleSpan(r.Y, r.Bottom(), s.height, fieldH)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetCell(x, y, glyph, c)
		}
	}
}

// scaleSpan maps the pixel span [from, to) onto cells, never returning an empty span.
func scaleSpan(from, to, cells, pixels int) (int, int) {
	start := floorDiv(from*cells, pixels)
	end := -floorDiv(-to*cells, pixels)
	if end <= start {
		end = start + 1
	}
	return start, end
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
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
