package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/diegok/pixbreak/internal/protocol"
)

// KeyToDirection converts a key event to a movement direction
// For Breakout, only left/right movement is allowed
func KeyToDirection(key tcell.Key, r rune) protocol.Direction {
	switch key {
	case tcell.KeyLeft:
		return protocol.DirLeft
	case tcell.KeyRight:
		return protocol.DirRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'h':
			return protocol.DirLeft
		case 'd', 'D', 'l':
			return protocol.DirRight
		}
	}
	return protocol.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// HeldKey turns key presses into a held direction. Terminals only report
// presses and auto-repeats, never releases, so a direction stays held for a
// fixed number of ticks after the last press.
type HeldKey struct {
	dir   protocol.Direction
	ticks int
	hold  int
}

// NewHeldKey keeps a direction held for hold ticks after each press
func NewHeldKey(hold int) *HeldKey {
	if hold < 1 {
		hold = 1
	}
	return &HeldKey{hold: hold}
}

// Press records a key press. DirNone releases immediately.
func (h *HeldKey) Press(dir protocol.Direction) {
	h.dir = dir
	if dir == protocol.DirNone {
		h.ticks = 0
		return
	}
	h.ticks = h.hold
}

// Next returns the direction for the coming tick and counts down the hold
func (h *HeldKey) Next() protocol.Direction {
	if h.ticks == 0 {
		return protocol.DirNone
	}
	h.ticks--
	return h.dir
}
