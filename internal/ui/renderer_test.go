package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/diegok/pixbreak/internal/game"
	"github.com/diegok/pixbreak/internal/protocol"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	return NewRenderer(NewScreen(sim)), sim
}

func newTestState(t *testing.T) protocol.RoundState {
	t.Helper()
	r, err := game.NewRound(game.DefaultSettings())
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r.Snapshot()
}

// rowText reads one screen row back as a string
func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

// cellHasColor reports whether either half of a cell shows color
func cellHasColor(sim tcell.SimulationScreen, x, y int, color tcell.Color) bool {
	_, _, style, _ := sim.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return fg == color || bg == color
}

// brickCell finds the terminal cell covering a brick's center
func brickCell(sim tcell.SimulationScreen, state protocol.RoundState, b protocol.BrickState) (int, int) {
	w, h := sim.Size()
	cols := w - 2
	rows := h - headerRows - 1 - 2
	px := int(b.X * float64(cols) / state.FieldWidth)
	py := int(b.Y * float64(rows*2) / state.FieldHeight)
	return 1 + px, headerRows + 1 + py/2
}

func TestRenderRound_Header(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	state := newTestState(t)
	state.Score = 42

	r.RenderRound(state)

	if !strings.Contains(rowText(sim, 0), Title) {
		t.Errorf("expected title on first row, got %q", rowText(sim, 0))
	}
	if !strings.Contains(rowText(sim, 1), "[ 0042 ]") {
		t.Errorf("expected zero padded score, got %q", rowText(sim, 1))
	}
	if !strings.Contains(rowText(sim, 1), "bricks: 75") {
		t.Errorf("expected brick count, got %q", rowText(sim, 1))
	}
}

func TestRenderRound_SpareBalls(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	state := newTestState(t)

	r.RenderRound(state)

	status := rowText(sim, 23)
	if got := strings.Count(status, string(BallChar)); got != state.ExtraBalls {
		t.Errorf("expected %d spare balls, got %d in %q", state.ExtraBalls, got, status)
	}
	if !strings.Contains(status, "q quit") {
		t.Errorf("expected key hint in status line, got %q", status)
	}
}

func TestRenderRound_Bricks(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	state := newTestState(t)

	r.RenderRound(state)

	b := state.Bricks[0]
	x, y := brickCell(sim, state, b)
	if !cellHasColor(sim, x, y, BrickColor(b.Color)) {
		t.Errorf("expected brick color at cell (%d, %d)", x, y)
	}
}

func TestRenderRound_HiddenBrick(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	state := newTestState(t)
	state.Bricks[0].Hidden = true

	r.RenderRound(state)

	b := state.Bricks[0]
	x, y := brickCell(sim, state, b)
	if cellHasColor(sim, x, y, BrickColor(b.Color)) {
		t.Errorf("expected hidden brick not to be drawn at (%d, %d)", x, y)
	}
}

func TestRenderRound_WinBanner(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	state := newTestState(t)
	state.Won = true

	r.RenderRound(state)

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(sim, y), WinText) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected win banner on screen")
	}
	if !strings.Contains(rowText(sim, 23), "press any key") {
		t.Errorf("expected key prompt once the round is over, got %q", rowText(sim, 23))
	}
}

func TestRenderRound_LoseBanner(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)
	state := newTestState(t)
	state.Lost = true
	state.Lives = 0
	state.ExtraBalls = 0

	r.RenderRound(state)

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(sim, y), LoseText) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected game over banner on screen")
	}
}

func TestRenderRound_TooSmall(t *testing.T) {
	r, sim := newTestRenderer(t, 30, 5)
	state := newTestState(t)

	r.RenderRound(state)

	if !strings.Contains(rowText(sim, 2), "Terminal too small") {
		t.Errorf("expected size warning, got %q", rowText(sim, 2))
	}
}

func TestRenderError(t *testing.T) {
	r, sim := newTestRenderer(t, 80, 24)

	r.RenderError("something broke")

	if !strings.Contains(rowText(sim, 12), "something broke") {
		t.Errorf("expected error message, got %q", rowText(sim, 12))
	}
}
