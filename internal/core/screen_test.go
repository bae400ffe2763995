package core

import "testing"

func at(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if at(s, x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", at(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorDefault)
	if at(s, 5, 5) != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", at(s, 5, 5))
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorDefault)
	s.SetColored(100, 0, 'A', ColorDefault)
	s.SetColored(0, -1, 'A', ColorDefault)
	s.SetColored(0, 100, 'A', ColorDefault)

	if at(s, -1, 0) != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if at(s, 100, 0) != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, 'O', ColorSnakeHead)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'O' || cell.Color != ColorSnakeHead {
		t.Errorf("GetCell(1, 1) = %+v, expected head cell", cell)
	}

	s.Clear()
	if got := s.GetCell(1, 1); got.Color != ColorDefault || got.Rune != ' ' {
		t.Errorf("Clear should reset color, got %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorDefault)

	for i, ch := range "Hello" {
		if at(s, 2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, at(s, 2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	if at(s, 18, 0) != 'H' || at(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "·a·", ColorDefault)

	if at(s, 1, 0) != 'a' {
		t.Errorf("multibyte runes should occupy one cell each, got row %q", s.String())
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorBanner)

	x := (20 - 2) / 2
	if at(s, x, 2) != 'H' || at(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorBanner {
		t.Errorf("DrawTextCentered should apply color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorBorder)

	if at(s, 1, 1) != '┌' || at(s, 5, 1) != '┐' || at(s, 1, 4) != '└' || at(s, 5, 4) != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
	if at(s, 3, 1) != '─' || at(s, 1, 2) != '│' {
		t.Errorf("DrawBox edges wrong:\n%s", s.String())
	}
	if at(s, 3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', ColorDefault)
	s.SetColored(4, 4, 'Y', ColorDefault)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize dimensions = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if at(s, 1, 1) != 'X' {
		t.Error("Resize should preserve content inside new bounds")
	}

	s.Resize(6, 6)
	if at(s, 4, 4) != ' ' {
		t.Error("Content clipped by a shrink should not come back")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorDefault)
	s.DrawTextColored(0, 1, "def", ColorDefault)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
}
