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
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 3, '*', ColorBrightYellow)

	cell := s.GetCell(3, 3)
	if cell.Rune != '*' {
		t.Errorf("GetCell rune = %q, expected '*'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell color = %d, expected ColorBrightYellow", cell.Color)
	}

	// Plain Set resets the color to default
	s.Set(3, 3, '*')
	if s.GetCell(3, 3).Color != ColorDefault {
		t.Error("Set should use the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear should reset all cells, got %q/%d at (%d, %d)", cell.Rune, cell.Color, x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Clipped text should draw up to the edge, got %q", s.Get(19, 0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 20)

	if s.Width() != 20 || s.Height() != 20 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x20", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking keeps what fits
	s.Resize(3, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("Shrinking resize should keep content inside the new bounds")
	}
}
