package sisyphus

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/core"
)

func newTestStone(seed int64) *Stone {
	return NewStone(config.DefaultSisyphusConfig().Stone, rand.New(rand.NewSource(seed)))
}

func dist(a, b core.Vec2) float64 {
	d := a.Sub(b)
	return math.Hypot(d.X, d.Y)
}

func TestStoneOutline(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Stone

	for seed := int64(1); seed <= 30; seed++ {
		s := newTestStone(seed)
		if n := len(s.Outline); n < cfg.MinPoints || n > cfg.MaxPoints {
			t.Fatalf("seed %d: %d outline points, want %d..%d", seed, n, cfg.MinPoints, cfg.MaxPoints)
		}
		for i, p := range s.Outline {
			r := math.Hypot(p.X, p.Y)
			if r < cfg.Radius-epsilon || r > cfg.Radius*(1+cfg.RadiusJitter)+epsilon {
				t.Errorf("seed %d: outline point %d at radius %v", seed, i, r)
			}
		}
	}
}

func TestStonePlaceAheadOfCharacter(t *testing.T) {
	terrain := peakTerrain()
	c := newTestCharacter(terrain)
	s := newTestStone(1)
	s.Place(terrain, c)

	if want := c.Pos.X + 2*s.Radius + c.Width/2; s.Pos.X != want {
		t.Errorf("x = %v, want %v", s.Pos.X, want)
	}

	// The first update drops it onto the slope.
	s.Update(terrain, c)
	if want := terrain.HeightAt(s.Pos.X) - s.Radius; s.Pos.Y != want {
		t.Errorf("y after first update = %v, want %v", s.Pos.Y, want)
	}
}

func TestStoneResetsAtRightEdge(t *testing.T) {
	terrain := peakTerrain()
	c := newTestCharacter(terrain)
	s := newTestStone(1)
	s.RollingDown = true
	s.Pos.X = terrain.Right() - 1

	s.Update(terrain, c)

	if s.RollingDown {
		t.Error("rolling-down still set after reaching the right edge")
	}
	if want := terrain.Left() + 2*s.Radius; s.Pos.X != want {
		t.Errorf("x after reset = %v, want %v", s.Pos.X, want)
	}
	if want := terrain.HeightAt(s.Pos.X) - s.Radius; s.Pos.Y != want {
		t.Errorf("y after reset = %v, want %v", s.Pos.Y, want)
	}
}

func TestStoneIdleKeepsRotation(t *testing.T) {
	terrain := peakTerrain()
	c := newTestCharacter(terrain)
	s := newTestStone(1)
	s.Place(terrain, c)

	x := s.Pos.X
	for range 50 {
		c.Update(terrain)
		s.Update(terrain, c)
	}
	if s.Rotation != 0 {
		t.Errorf("rotation = %v, want 0 without pushing", s.Rotation)
	}
	if s.Pos.X != x {
		t.Errorf("x moved from %v to %v without pushing", x, s.Pos.X)
	}
}

func TestStonePushedStaysFlush(t *testing.T) {
	terrain := peakTerrain()
	c := newTestCharacter(terrain)
	s := newTestStone(1)
	c.Pos.X = 200
	s.Pos.X = c.Pos.X + c.Width + s.Radius/2
	c.PushingUp = true

	c.Update(terrain)
	s.Update(terrain, c)

	if want := c.Pos.X + s.Radius + c.Width; s.Pos.X != want {
		t.Errorf("x = %v, want flush at %v", s.Pos.X, want)
	}
	if s.Rotation != config.DefaultSisyphusConfig().Stone.SpinStep {
		t.Errorf("rotation = %v after one push", s.Rotation)
	}
	if s.RollingDown {
		t.Error("rolling before crossing the peak")
	}
}

func TestStonePathClosedCurve(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Stone
	s := newTestStone(5)
	s.Pos = core.V(50, 60)

	path := s.Path(nil, cfg.CurveSegments)
	if want := len(s.Outline) * cfg.CurveSegments; len(path) != want {
		t.Fatalf("path has %d points, want %d", len(path), want)
	}

	n := len(s.Outline)
	start := s.Outline[n-1].Mid(s.Outline[0]).Add(s.Pos)
	last := path[len(path)-1]
	if dist(last, start) > epsilon {
		t.Errorf("path ends at %v, want start %v", last, start)
	}

	limit := cfg.Radius*(1+cfg.RadiusJitter) + epsilon
	for i, p := range path {
		if d := dist(p, s.Pos); d > limit {
			t.Errorf("path point %d at distance %v, beyond %v", i, d, limit)
		}
	}
}

func TestStonePathFollowsRotation(t *testing.T) {
	s := newTestStone(5)
	flat := s.Path(nil, 4)

	s.Rotation = math.Pi / 2
	turned := s.Path(nil, 4)

	for i := range flat {
		want := flat[i].Rotate(math.Pi / 2)
		if dist(turned[i], want) > 1e-6 {
			t.Fatalf("point %d = %v, want %v", i, turned[i], want)
		}
	}
}
