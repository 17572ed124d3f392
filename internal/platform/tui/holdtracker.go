package tui

import (
	"time"

	"github.com/vovakirdan/sisyphus/internal/core"
)

// DefaultHoldDuration covers the usual keyboard auto-repeat delay.
const DefaultHoldDuration = 550 * time.Millisecond

// HoldTracker turns the press-only key stream of a terminal into press and
// release edges. The first sighting of a key is a press; the key counts as
// held while auto-repeat keeps refreshing it, and is released once it has
// not been seen for the hold duration.
type HoldTracker struct {
	hold     time.Duration
	now      func() time.Time
	lastSeen map[core.Action]time.Time
	pending  core.InputFrame
}

// opposite pairs walking directions: walking one way ends walking the other.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewHoldTracker creates a tracker. A non-positive hold uses DefaultHoldDuration.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HoldTracker{
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[core.Action]time.Time),
		pending:  core.NewInputFrame(),
	}
}

// Holdable reports whether a is one of the buttons that can be held down.
func Holdable(a core.Action) bool {
	return a == core.ActionUp || a == core.ActionLeft || a == core.ActionRight
}

// Press records a key event for a.
func (h *HoldTracker) Press(a core.Action) {
	if !Holdable(a) {
		h.pending.Set(a)
		return
	}

	if other, ok := opposite[a]; ok && h.Held(other) {
		h.release(other)
	}
	if !h.Held(a) {
		h.pending.Set(a)
	}
	h.lastSeen[a] = h.now()
}

// Held reports whether a is currently considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.lastSeen[a]
	return ok
}

// ReleaseAll releases every held button, e.g. when leaving the game.
func (h *HoldTracker) ReleaseAll() {
	for a := range h.lastSeen {
		h.release(a)
	}
}

func (h *HoldTracker) release(a core.Action) {
	delete(h.lastSeen, a)
	h.pending.Release(a)
}

// Frame writes the edges collected since the previous call into dst,
// expiring buttons not seen for the hold duration first.
func (h *HoldTracker) Frame(dst *core.InputFrame) {
	now := h.now()
	for a, seen := range h.lastSeen {
		if now.Sub(seen) >= h.hold {
			h.release(a)
		}
	}

	dst.Clear()
	for a := range h.pending.Actions {
		dst.Set(a)
	}
	for a := range h.pending.Releases {
		dst.Release(a)
	}
	h.pending.Clear()
}
