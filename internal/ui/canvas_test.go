package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewCanvas_Size(t *testing.T) {
	c := NewCanvas(40, 10, 960, 600, ColorPlayArea)

	if c.Width() != 40 {
		t.Errorf("expected width 40, got %d", c.Width())
	}
	if c.Height() != 20 {
		t.Errorf("expected height 20 (two pixels per row), got %d", c.Height())
	}
	if c.At(0, 0) != ColorPlayArea {
		t.Error("expected new canvas to be filled with background")
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100, tcell.ColorBlack)
	c.FillRect(0, 0, 50, 50, tcell.ColorRed)

	if c.At(4, 4) != tcell.ColorRed {
		t.Error("expected pixel inside rect to be filled")
	}
	if c.At(5, 5) != tcell.ColorBlack {
		t.Error("expected pixel outside rect to keep background")
	}
}

func TestCanvas_TinyRectStillVisible(t *testing.T) {
	c := NewCanvas(10, 5, 1000, 1000, tcell.ColorBlack)
	c.FillRect(500, 500, 501, 501, tcell.ColorRed)

	if c.At(5, 5) != tcell.ColorRed {
		t.Error("expected sub-pixel rect to cover one pixel")
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20, tcell.ColorBlack)
	c.FillCircle(10, 10, 6, tcell.ColorRed)

	if c.At(10, 10) != tcell.ColorRed {
		t.Error("expected center pixel to be filled")
	}
	if c.At(10, 5) != tcell.ColorRed || c.At(15, 10) != tcell.ColorRed {
		t.Error("expected pixels inside the radius to be filled")
	}
	// Corners of the bounding square lie outside the circle
	for _, p := range [][2]int{{4, 4}, {15, 4}, {4, 15}, {15, 15}} {
		if c.At(p[0], p[1]) != tcell.ColorBlack {
			t.Errorf("expected corner pixel %v to stay background", p)
		}
	}
}

func TestCanvas_TinyCircleStillVisible(t *testing.T) {
	c := NewCanvas(10, 5, 1000, 1000, tcell.ColorBlack)
	c.FillCircle(503, 507, 1, tcell.ColorRed)

	if c.At(5, 5) != tcell.ColorRed {
		t.Error("expected sub-pixel circle to cover the pixel under its center")
	}
}

func TestCanvas_OutOfRange(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4, tcell.ColorBlack)

	// Must not panic
	c.Set(-1, 0, tcell.ColorRed)
	c.Set(0, 100, tcell.ColorRed)
	c.FillRect(-10, -10, 100, 100, tcell.ColorRed)

	if c.At(-1, -1) != tcell.ColorBlack {
		t.Error("expected background for out-of-range pixel")
	}
	if c.At(3, 3) != tcell.ColorRed {
		t.Error("expected oversize rect to be clipped, not dropped")
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4, tcell.ColorBlack)
	c.FillRect(0, 0, 4, 4, tcell.ColorRed)
	c.Clear()

	if c.At(1, 1) != tcell.ColorBlack {
		t.Error("expected Clear to restore background")
	}
}

func TestCanvas_Draw(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(10, 10)

	c := NewCanvas(2, 1, 2, 2, tcell.ColorBlack)
	c.Set(0, 0, tcell.ColorRed)   // Top half of cell 0
	c.Set(1, 1, tcell.ColorGreen) // Bottom half of cell 1

	c.Draw(NewScreen(sim), 3, 4)

	r, _, style, _ := sim.GetContent(3, 4)
	if r != halfBlock {
		t.Errorf("expected half block, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.ColorRed || bg != tcell.ColorBlack {
		t.Errorf("cell 0: expected red over black, got fg=%v bg=%v", fg, bg)
	}

	_, _, style, _ = sim.GetContent(4, 4)
	fg, bg, _ = style.Decompose()
	if fg != tcell.ColorBlack || bg != tcell.ColorGreen {
		t.Errorf("cell 1: expected black over green, got fg=%v bg=%v", fg, bg)
	}
}
