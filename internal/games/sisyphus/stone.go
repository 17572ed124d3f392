package sisyphus

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/core"
)

// Stone is the boulder. Pos is its center; Outline holds the jittered
// boundary offsets around the center, fixed for the stone's lifetime.
type Stone struct {
	Pos         core.Vec2
	Radius      float64
	Rotation    float64 // Radians, only ever increases
	RollingDown bool
	Outline     []core.Vec2

	spinStep    float64
	resetOffset float64
}

// NewStone creates a stone with an irregular outline of
// cfg.MinPoints..cfg.MaxPoints samples drawn from rng.
func NewStone(cfg config.StoneConfig, rng *rand.Rand) *Stone {
	n := cfg.MinPoints
	if cfg.MaxPoints > cfg.MinPoints {
		n += rng.Intn(cfg.MaxPoints - cfg.MinPoints + 1)
	}

	outline := make([]core.Vec2, n)
	for i := range outline {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := cfg.Radius + cfg.Radius*cfg.RadiusJitter*rng.Float64()
		outline[i] = core.V(math.Cos(angle), math.Sin(angle)).Scale(r)
	}

	return &Stone{
		Radius:      cfg.Radius,
		Outline:     outline,
		spinStep:    cfg.SpinStep,
		resetOffset: cfg.ResetOffsetRadii * cfg.Radius,
	}
}

// Place puts the stone just ahead of the character, hovering above the
// slope; the first update drops it onto the surface.
func (s *Stone) Place(t *Terrain, c *Character) {
	s.Pos.X = c.Pos.X + s.Radius*2 + c.Width/2
	s.Pos.Y = t.HeightAt(s.Pos.X) - 4*s.Radius
}

// Adjacent reports whether c stands right behind the stone, close enough
// to push it.
func (s *Stone) Adjacent(c *Character) bool {
	return s.Pos.X-c.Pos.X < s.Radius+c.Width && s.Pos.X > c.Pos.X
}

// Update advances the stone one frame. c must already be updated.
func (s *Stone) Update(t *Terrain, c *Character) {
	// Never hover above the slope
	if surface := s.surfaceAt(t, s.Pos.X); s.Pos.Y < surface {
		s.Pos.Y = surface
	}

	if !s.RollingDown && c.PushingUp && s.Adjacent(c) {
		s.Rotation += s.spinStep
		s.Pos.X = c.Pos.X + s.Radius + c.Width
		s.Pos.Y = s.surfaceAt(t, s.Pos.X)
		if s.Pos.X > t.PeakX() {
			s.RollingDown = true
		}
	}

	if s.RollingDown {
		s.Pos.X += c.Speed
		s.Rotation += s.spinStep
		s.Pos.Y = s.surfaceAt(t, s.Pos.X)

		if s.Pos.X >= t.Right() {
			s.Reset(t)
		}
	}
}

// Reset returns the stone to its start: the labor begins again.
func (s *Stone) Reset(t *Terrain) {
	s.RollingDown = false
	s.Pos.X = t.Left() + s.resetOffset
	s.Pos.Y = s.surfaceAt(t, s.Pos.X)
}

// surfaceAt returns the center y of a stone resting on the slope at x.
func (s *Stone) surfaceAt(t *Terrain, x float64) float64 {
	return t.HeightAt(x) - s.Radius
}

// Path returns the stone's silhouette in world space: a closed curve of
// quadratic segments running from midpoint to midpoint of consecutive
// outline samples, each bent towards its sample, flattened into
// segments steps per curve. It appends to dst.
func (s *Stone) Path(dst []core.Vec2, segments int) []core.Vec2 {
	n := len(s.Outline)
	if n == 0 {
		return dst
	}
	segments = max(segments, 1)

	start := s.Outline[n-1].Mid(s.Outline[0])
	for i, ctrl := range s.Outline {
		end := ctrl.Mid(s.Outline[(i+1)%n])
		for k := 1; k <= segments; k++ {
			p := core.QuadBezier(start, ctrl, end, float64(k)/float64(segments))
			dst = append(dst, p.Rotate(s.Rotation).Add(s.Pos))
		}
		start = end
	}
	return dst
}
