package sisyphus

import (
	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/core"
)

// Character is the pusher. Pos is the bottom-left corner of its body box.
// Only Pos.X carries state between frames: Pos.Y is re-derived from the
// terrain at the end of every update, so the vertical moves below only
// steer the regime logic.
type Character struct {
	Pos        core.Vec2
	Width      float64
	Height     float64
	HeadRadius float64
	Speed      float64

	PushingUp   bool
	MovingLeft  bool
	MovingRight bool
}

// NewCharacter places a character at the mountain's left foot.
func NewCharacter(cfg config.CharacterConfig, t *Terrain) *Character {
	c := &Character{
		Pos:        core.V(t.Left(), t.BaseY()),
		Width:      cfg.Width,
		Height:     cfg.Height,
		HeadRadius: cfg.HeadRadius,
		Speed:      cfg.Speed,
	}
	c.settle(t)
	return c
}

// CenterX returns the x-coordinate the character samples the slope at.
func (c *Character) CenterX() float64 {
	return c.Pos.X + c.Width/2
}

// Update advances the character one frame.
func (c *Character) Update(t *Terrain) {
	if c.PushingUp {
		c.Pos.Y -= c.Speed
		c.Pos.X += c.Speed / 2
		if c.Pos.Y <= t.PeakY() {
			c.PushingUp = false
		}
	} else {
		// Slide back down, away from the peak
		c.Pos.Y += c.Speed
		if c.Pos.X > t.PeakX() {
			c.Pos.X += c.Speed / 2
		} else {
			c.Pos.X -= c.Speed / 2
		}
		if c.Pos.Y >= t.BaseY() {
			c.Pos.Y = t.BaseY()
		}
	}

	if c.MovingLeft {
		c.Pos.X -= c.Speed
	}
	if c.MovingRight {
		c.Pos.X += c.Speed
	}

	c.settle(t)
}

// settle clamps x to the mountain and glues the character to the slope.
func (c *Character) settle(t *Terrain) {
	c.Pos.X = core.ClampF(c.Pos.X, t.Left(), t.Right()-c.Width)
	c.Pos.Y = t.HeightAt(c.CenterX())
}
