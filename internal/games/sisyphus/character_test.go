package sisyphus

import (
	"testing"

	"github.com/vovakirdan/sisyphus/internal/config"
)

func newTestCharacter(terrain *Terrain) *Character {
	return NewCharacter(config.DefaultSisyphusConfig().Character, terrain)
}

func TestCharacterStartsAtLeftFoot(t *testing.T) {
	terrain := peakTerrain()
	c := newTestCharacter(terrain)

	if c.Pos.X != terrain.Left() {
		t.Errorf("start x = %v, want %v", c.Pos.X, terrain.Left())
	}
	if c.Pos.Y != terrain.HeightAt(c.CenterX()) {
		t.Errorf("start y = %v, not on the slope", c.Pos.Y)
	}
}

func TestCharacterClampAndSnap(t *testing.T) {
	terrain := peakTerrain()
	starts := []float64{0, 100, 250, 400, 560, 690, 900}

	for mask := 0; mask < 8; mask++ {
		for _, x := range starts {
			c := newTestCharacter(terrain)
			c.Pos.X = x
			c.PushingUp = mask&1 != 0
			c.MovingLeft = mask&2 != 0
			c.MovingRight = mask&4 != 0

			c.Update(terrain)

			if c.Pos.X < terrain.Left() || c.Pos.X > terrain.Right()-c.Width {
				t.Errorf("mask %03b start %v: x = %v outside [%v, %v]",
					mask, x, c.Pos.X, terrain.Left(), terrain.Right()-c.Width)
			}
			if want := terrain.HeightAt(c.Pos.X + c.Width/2); c.Pos.Y != want {
				t.Errorf("mask %03b start %v: y = %v, want %v", mask, x, c.Pos.Y, want)
			}
		}
	}
}

func TestCharacterPushAutoClears(t *testing.T) {
	terrain := peakTerrain()
	c := newTestCharacter(terrain)
	c.PushingUp = true

	// The lift is re-snapped to the slope every frame, so the push walks
	// the slope at Speed/2 a frame and clears once the summit is reached:
	// 295 frames on the reference mountain, not Height/Speed.
	const wantFrames = 295
	frames := 0
	for c.PushingUp && frames < 2*wantFrames {
		c.Update(terrain)
		frames++
	}

	if c.PushingUp {
		t.Fatalf("pushing-up still set after %d frames", frames)
	}
	if frames != wantFrames {
		t.Errorf("push cleared after %d frames, want %d", frames, wantFrames)
	}
	if c.Pos.X != 395 || c.Pos.Y != terrain.PeakY() {
		t.Errorf("cleared at %v, want (395, %v)", c.Pos, terrain.PeakY())
	}
}

func TestCharacterDescendsAwayFromPeak(t *testing.T) {
	terrain := peakTerrain()

	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{"left of peak", 200, 199},
		{"right of peak", 500, 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter(terrain)
			c.Pos.X = tt.start
			c.Update(terrain)
			if c.Pos.X != tt.want {
				t.Errorf("x = %v, want %v", c.Pos.X, tt.want)
			}
		})
	}
}

func TestCharacterLateralMoves(t *testing.T) {
	terrain := peakTerrain()

	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"left", true, false, 297},
		{"right", false, true, 301},
		{"both cancel", true, true, 299},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter(terrain)
			c.Pos.X = 300
			c.MovingLeft = tt.left
			c.MovingRight = tt.right
			c.Update(terrain)
			if c.Pos.X != tt.want {
				t.Errorf("x = %v, want %v", c.Pos.X, tt.want)
			}
		})
	}
}
