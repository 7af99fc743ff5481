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
			if runeAt(s, x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", runeAt(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if runeAt(s, 5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", runeAt(s, 5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
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
			if runeAt(s, x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if runeAt(s, x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorDefault)

	expected := "Hello"
	for i, ch := range expected {
		if runeAt(s, 2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, runeAt(s, 2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawTextColored(18, 0, "Hello", ColorDefault) // Only "He" should fit
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredColored(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCenteredColored(2, text, ColorDefault)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if runeAt(s, x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}

	// Check outside is still space
	if runeAt(s, 1, 1) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if runeAt(s, 5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorCyan)

	// Check corners
	if runeAt(s, 1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", runeAt(s, 1, 1))
	}
	if runeAt(s, 5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", runeAt(s, 5, 1))
	}
	if runeAt(s, 1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", runeAt(s, 1, 4))
	}
	if runeAt(s, 5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", runeAt(s, 5, 4))
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, runeAt(s, x, 1))
		}
		if runeAt(s, x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, runeAt(s, x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, runeAt(s, 1, y))
		}
		if runeAt(s, 5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, runeAt(s, 5, y))
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if runeAt(s, x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, runeAt(s, x, 2))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)
	s.DrawTextColored(0, 5, "World", ColorDefault)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := rowAt(s, 0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = rowAt(s, 0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '@', ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red '@'", cell)
	}

	s.DrawTextColored(0, 0, "ab", ColorGreen)
	if s.GetCell(1, 0).Color != ColorGreen {
		t.Error("DrawTextColored should color every rune")
	}

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a space")
	}
}

func TestScreenDrawTextCenteredWide(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCenteredColored(0, "日", ColorDefault)

	// One double-width rune centered in 10 columns starts at 4.
	if runeAt(s, 4, 0) != '日' {
		t.Errorf("row = %q", s.String())
	}
}

func TestScreenShift(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetColored(2, 1, 'X', ColorYellow)

	s.Shift(1, -1)
	if runeAt(s, 3, 0) != 'X' {
		t.Errorf("after Shift(1, -1) expected 'X' at (3, 0), screen:\n%s", s.String())
	}
	if s.GetCell(3, 0).Color != ColorYellow {
		t.Error("Shift should keep colors")
	}
	if runeAt(s, 2, 1) != ' ' {
		t.Error("old position should be cleared")
	}

	s.Shift(0, 0)
	if runeAt(s, 3, 0) != 'X' {
		t.Error("Shift(0, 0) should not change content")
	}
}

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func rowAt(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
