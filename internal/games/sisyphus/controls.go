package sisyphus

import "github.com/vovakirdan/sisyphus/internal/core"

// Button is one of the three logical buttons of the game.
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonLeft
	ButtonRight
)

// ButtonFor maps a platform action to a game button.
func ButtonFor(a core.Action) Button {
	switch a {
	case core.ActionUp:
		return ButtonUp
	case core.ActionLeft:
		return ButtonLeft
	case core.ActionRight:
		return ButtonRight
	default:
		return ButtonNone
	}
}

// Controls translates button presses and releases into the character's
// intent flags.
type Controls struct {
	sim *Sim

	// AssistPush makes Right also push uphill while the character is left
	// of the peak, and releasing Right stop the push.
	AssistPush bool
}

// NewControls creates controls bound to sim.
func NewControls(sim *Sim, assistPush bool) Controls {
	return Controls{sim: sim, AssistPush: assistPush}
}

// Press handles a button going down.
func (c Controls) Press(b Button) {
	ch := c.sim.Character
	switch b {
	case ButtonUp:
		ch.PushingUp = true
	case ButtonLeft:
		ch.MovingLeft = true
	case ButtonRight:
		ch.MovingRight = true
		if c.AssistPush && ch.Pos.X <= c.sim.Terrain.PeakX() {
			ch.PushingUp = true
		}
	}
}

// Release handles a button going up.
func (c Controls) Release(b Button) {
	ch := c.sim.Character
	switch b {
	case ButtonUp:
		ch.PushingUp = false
	case ButtonLeft:
		ch.MovingLeft = false
	case ButtonRight:
		ch.MovingRight = false
		if c.AssistPush {
			ch.PushingUp = false
		}
	}
}

// Apply feeds the edges of one input frame: releases first, so a button
// released and pressed again within the tick stays held.
func (c Controls) Apply(in core.InputFrame) {
	if in.Empty() {
		return
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight} {
		if in.Released(a) {
			c.Release(ButtonFor(a))
		}
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			c.Press(ButtonFor(a))
		}
	}
}
