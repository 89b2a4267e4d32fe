package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("Expected 'X' at (3,2), got %q", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("Expected ColorRed at (3,2), got %v", cell.Color)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out-of-bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorGreen)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() should reset cells, got %q/%v", cell.Rune, cell.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorDefault)

	if s.GetCell(2, 1).Rune != 'h' || s.GetCell(3, 1).Rune != 'i' {
		t.Errorf("DrawText() misplaced text, row: %q", s.Row(1))
	}

	// Clipped text does not panic
	s.DrawText(8, 1, "long", ColorDefault)
	if s.GetCell(9, 1).Rune != 'o' {
		t.Errorf("Expected clipped text to keep in-bounds cells, row: %q", s.Row(1))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Resize() dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(2, 2).Rune != '@' {
		t.Error("Resize() should preserve existing content")
	}

	s.Resize(3, 3)
	if s.GetCell(2, 2).Rune != '@' {
		t.Error("Shrinking resize should keep in-bounds content")
	}
}

func TestScreenFillEllipse(t *testing.T) {
	s := NewScreen(21, 11)
	s.FillEllipse(10, 5, 6, 3, '█', ColorYellow)

	// Center is filled
	if s.GetCell(10, 5).Rune != '█' {
		t.Error("Ellipse center should be filled")
	}
	// Horizontal extremes are filled
	if s.GetCell(4, 5).Rune != '█' || s.GetCell(16, 5).Rune != '█' {
		t.Error("Ellipse horizontal extremes should be filled")
	}
	// Corner of the bounding box is outside the ellipse
	if s.GetCell(4, 2).Rune == '█' {
		t.Error("Bounding-box corner should not be filled")
	}
}

func TestScreenFillEllipseDegenerate(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillEllipse(2, 2, 0, 0, 'o', ColorDefault)
	if s.GetCell(2, 2).Rune != 'o' {
		t.Error("Zero-radius ellipse should still mark its center cell")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("Unexpected screen content: %q", out)
	}
}
