package core

// Color identifies a fill color in the shared palette.
// Frontends translate it: the terminal via lipgloss, the window via Hex.
type Color uint8

// Palette entries used by the playfield.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorBlue
)

var paletteHex = [...]string{
	ColorDefault: "",
	ColorBlack:   "#000000",
	ColorWhite:   "#ffffff",
	ColorGray:    "#c0c0c0",
	ColorGreen:   "#3cb44b",
	ColorYellow:  "#ffe119",
	ColorOrange:  "#f58231",
	ColorRed:     "#e6194b",
	ColorBlue:    "#4363d8",
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault and unknown values.
func (c Color) Hex() string {
	if int(c) >= len(paletteHex) {
		return ""
	}
	return paletteHex[c]
}

// Palette returns every color that has a hex value.
func Palette() []Color {
	colors := make([]Color, 0, len(paletteHex))
	for i, hex := range paletteHex {
		if hex != "" {
			colors = append(colors, Color(i))
		}
	}
	return colors
}

// Drawable is anything the render collaborator can paint: a rectangle in
// playfield pixels filled with a single color.
type Drawable interface {
	Rect() Rect
	FillColor() Color
}
