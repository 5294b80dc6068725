package tui

import (
	"image/color"
	"testing"
	"time"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.Set(0, 0, core.Cell{Rune: 'a'})
	s.Set(1, 0, core.Cell{Rune: 'b'})
	s.Set(1, 1, core.Cell{Rune: 'c'})
	s.Set(2, 1, core.Cell{Rune: 'd'})

	want := "ab   \n cd  "
	if got := RenderScreen(s); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestHexColor(t *testing.T) {
	if _, ok := hexColor(color.RGBA{R: 10}); ok {
		t.Error("zero alpha should mean terminal default")
	}
	c, ok := hexColor(color.RGBA{R: 255, G: 16, B: 1, A: 255})
	if !ok || string(c) != "#ff1001" {
		t.Errorf("hexColor = %q, %v; expected #ff1001", c, ok)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59*time.Second + 600*time.Millisecond, "1:00"},
		{12*time.Minute + 5*time.Second, "12:05"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
