package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Renderer converts a Screen buffer to a styled string for display.
// Styled rows are cached and rebuilt only when the screen reports them dirty.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
	rows   []string
	width  int

	restyled int // rows rebuilt by the last Render
}

// NewRenderer creates a renderer with one lipgloss style per palette color.
func NewRenderer() *Renderer {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for _, c := range core.Palette() {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return &Renderer{styles: styles}
}

// Render returns the whole screen as styled text and marks the screen clean.
func (r *Renderer) Render(s *core.Screen) string {
	stale := len(r.rows) != s.Height() || r.width != s.Width()
	if stale {
		r.rows = make([]string, s.Height())
		r.width = s.Width()
	}

	r.restyled = 0
	for y := 0; y < s.Height(); y++ {
		if stale || s.RowDirty(y) {
			r.rows[y] = r.renderRow(s, y)
			r.restyled++
		}
	}
	s.MarkClean()

	return strings.Join(r.rows, "\n")
}

// Restyled returns how many rows the last Render rebuilt.
func (r *Renderer) Restyled() int {
	return r.restyled
}

// renderRow groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	sb.Grow(s.Width() * 2)

	x := 0
	for x < s.Width() {
		startColor := s.GetCell(x, y).Color

		// Collect consecutive cells with same color
		var run strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != startColor {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		style, ok := r.styles[startColor]
		if !ok {
			style = r.styles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
	return sb.String()
}
