package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '#', ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' in red", cell)
	}
	if s.GetCell(9, 9) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDirtyRows(t *testing.T) {
	s := NewScreen(5, 3)

	// A fresh screen is fully dirty
	for y := 0; y < 3; y++ {
		if !s.RowDirty(y) {
			t.Errorf("New screen row %d should be dirty", y)
		}
	}

	s.MarkClean()
	s.Set(2, 1, 'X')
	if s.RowDirty(0) || !s.RowDirty(1) || s.RowDirty(2) {
		t.Error("Only row 1 should be dirty after writing to it")
	}

	// Writing the same content again does not dirty the row
	s.MarkClean()
	s.Set(2, 1, 'X')
	if s.RowDirty(1) {
		t.Error("Rewriting identical content should not dirty the row")
	}

	// Clear only dirties rows that had content
	s.Clear()
	if s.RowDirty(0) || !s.RowDirty(1) {
		t.Error("Clear should dirty only rows that changed")
	}

	// Clearing and redrawing the same frame leaves the row clean
	s.Set(2, 1, 'X')
	s.MarkClean()
	s.Clear()
	s.Set(2, 1, 'X')
	if s.RowDirty(1) {
		t.Error("Redrawing identical content after Clear should not dirty the row")
	}

	// Resize makes everything dirty again
	s.MarkClean()
	s.Resize(6, 3)
	if !s.RowDirty(0) || !s.RowDirty(2) {
		t.Error("Resize should dirty every row")
	}
}

func TestScreenFillScaled(t *testing.T) {
	// 100x50 pixels onto 10x5 cells: one cell is 10x10 pixels
	s := NewScreen(10, 5)

	s.FillScaled(NewRect(20, 10, 30, 20), 100, 50, '#', ColorBlue)
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			if got := s.GetCell(x, y).Rune == '#'; got != inside {
				t.Errorf("FillScaled cell (%d, %d) filled=%v, expected %v", x, y, got, inside)
			}
		}
	}

	// Sub-cell rects still cover one cell
	s.Clear()
	s.FillScaled(NewRect(91, 41, 2, 2), 100, 50, 'o', ColorWhite)
	if s.GetCell(9, 4).Rune != 'o' || s.GetCell(9, 4).Color != ColorWhite {
		t.Errorf("Small rect should cover cell (9, 4), got %+v", s.GetCell(9, 4))
	}

	// Off-field parts are clipped
	s.Clear()
	s.FillScaled(NewRect(-30, 0, 40, 10), 100, 50, '#', ColorRed)
	if s.GetCell(0, 0).Rune != '#' {
		t.Error("Partially visible rect should paint its visible cells")
	}
}
