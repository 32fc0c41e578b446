package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorBrightBlue)

	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightBlue {
		t.Errorf("GetCell(3, 2) = %+v", cell)
	}
	if s.Get(0, 0) != ' ' {
		t.Error("untouched cell is not a space")
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// Must not panic and must not change anything
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	s.SetCell(0, 5, 'x', ColorRed)

	if cell := s.GetCell(-1, 0); cell.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v", cell)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write landed in the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorGreen)
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear() left content behind")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear() left color behind")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(0, 0, '#', ColorGreen)

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("size %dx%d after resize, want 8x6", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize() kept stale content")
	}

	// Same-size resize is a no-op
	s.SetCell(0, 0, '#', ColorGreen)
	s.Resize(8, 6)
	if s.Get(0, 0) != '#' {
		t.Error("same-size Resize() wiped the buffer")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "abcdef", ColorWhite)

	if s.Get(7, 0) != 'a' || s.Get(9, 0) != 'c' {
		t.Error("DrawText() misplaced characters")
	}
	// Characters past the right edge are clipped, not wrapped
	if s.Get(0, 1) != ' ' {
		t.Error("DrawText() wrapped instead of clipping")
	}
}

func TestDrawHLine(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawHLine(2, 1, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if s.Get(x, 1) != '-' {
			t.Errorf("missing line rune at x=%d", x)
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(7, 1) != ' ' {
		t.Error("line drawn outside its range")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
