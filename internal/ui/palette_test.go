package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBrickColor_Table(t *testing.T) {
	tests := []struct {
		row     int
		r, g, b int32
	}{
		{0, 0xbc, 0xb6, 0xff},
		{1, 0xb8, 0xe1, 0xff},
		{2, 0xa9, 0xff, 0xf7},
		{3, 0x94, 0xfb, 0xab},
		{4, 0x82, 0xab, 0xa1},
	}

	for _, tt := range tests {
		want := tcell.NewRGBColor(tt.r, tt.g, tt.b)
		if got := BrickColor(tt.row); got != want {
			t.Errorf("BrickColor(%d) = %v, want %v", tt.row, got, want)
		}
	}
}

func TestBrickColor_NegativeRow(t *testing.T) {
	if BrickColor(-3) != BrickColor(0) {
		t.Error("expected negative row to use the first color")
	}
}

func TestBrickColor_ExtraRows(t *testing.T) {
	last := BrickColor(len(brickHex) - 1)
	for row := len(brickHex); row < len(brickHex)+4; row++ {
		c := BrickColor(row)
		if c == tcell.ColorDefault {
			t.Errorf("row %d: expected a real color", row)
		}
		if c == last {
			t.Errorf("row %d: expected extra rows to shift away from the last color", row)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor("#ee4266"); got != tcell.NewRGBColor(0xee, 0x42, 0x66) {
		t.Errorf("unexpected ball color %v", got)
	}
	if got := hexColor("not-a-color"); got != tcell.ColorDefault {
		t.Errorf("expected default for invalid hex, got %v", got)
	}
}
