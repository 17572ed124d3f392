// Package sisyphus implements the stone-pushing game: a procedurally
// generated mountain, a pusher glued to its slope, and a stone that rolls
// back to the foot of the mountain whenever it crosses the peak.
package sisyphus

import (
	"math/rand"

	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/core"
)

// Box is the mountain's bounding box in logical units.
// Y is the base line; the peak sits Height above it.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Terrain is the mountain silhouette: samples ordered left to right with
// strictly increasing X, used only for piecewise-linear interpolation.
type Terrain struct {
	Box
	Points []core.Vec2
	gen    Generator
}

// Generator produces the silhouette samples for a bounding box.
// Implementations append to dst and return the extended slice.
type Generator interface {
	Generate(box Box, dst []core.Vec2) []core.Vec2
}

// NewTerrain creates a terrain and generates its points immediately, so a
// Terrain is never queried before it has a silhouette.
func NewTerrain(box Box, gen Generator) *Terrain {
	t := &Terrain{gen: gen}
	t.Regenerate(box)
	return t
}

// NewGenerator returns the generator selected by cfg.Policy.
// rng is only consumed by the random policy.
func NewGenerator(cfg config.TerrainConfig, rng *rand.Rand) Generator {
	if cfg.Policy == config.PolicyPeak {
		return SinglePeak{Points: cfg.PeakPoints}
	}
	return &RandomSlope{
		PerSide: cfg.PointsPerSide,
		Left:    cfg.LeftJitter,
		Right:   cfg.RightJitter,
		Rand:    rng,
	}
}

// Regenerate clears the samples and rebuilds them for box.
func (t *Terrain) Regenerate(box Box) {
	t.Box = box
	t.Points = t.gen.Generate(box, t.Points[:0])
}

// Left returns the x-coordinate of the mountain's left foot.
func (t *Terrain) Left() float64 {
	return t.X
}

// Right returns the x-coordinate of the mountain's right foot.
func (t *Terrain) Right() float64 {
	return t.X + t.Width
}

// BaseY returns the y-coordinate of the mountain's base line.
func (t *Terrain) BaseY() float64 {
	return t.Y
}

// PeakX returns the x-coordinate of the summit.
func (t *Terrain) PeakX() float64 {
	return t.X + t.Width/2
}

// PeakY returns the y-coordinate of the summit.
func (t *Terrain) PeakY() float64 {
	return t.Y - t.Height
}

// HeightAt returns the surface y at x by interpolating the first segment
// whose x-range contains it. Outside the sampled range, or with fewer than
// two samples, it falls back to the base line.
func (t *Terrain) HeightAt(x float64) float64 {
	for i := 0; i+1 < len(t.Points); i++ {
		p1, p2 := t.Points[i], t.Points[i+1]
		if x >= p1.X && x <= p2.X {
			if p2.X == p1.X {
				return p1.Y
			}
			slope := (p2.Y - p1.Y) / (p2.X - p1.X)
			return p1.Y + slope*(x-p1.X)
		}
	}
	return t.BaseY()
}

// RandomSlope builds two jagged slopes meeting at the peak. The left slope
// uses a larger jitter than the right one.
type RandomSlope struct {
	PerSide int
	Left    config.JitterConfig
	Right   config.JitterConfig
	Rand    *rand.Rand
}

// Generate implements Generator.
func (g *RandomSlope) Generate(box Box, dst []core.Vec2) []core.Vec2 {
	n := max(g.PerSide, 1)
	peakX := box.X + box.Width/2
	peakY := box.Y - box.Height

	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := box.X + t*(peakX-box.X)
		y := box.Y - t*box.Height
		dst = append(dst, core.V(x, y+g.jitter(g.Left, box.Height)))
	}

	// i starts at 1: the peak sample already closes the left slope.
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		x := peakX + t*(box.X+box.Width-peakX)
		y := peakY + t*box.Height
		dst = append(dst, core.V(x, y+g.jitter(g.Right, box.Height)))
	}
	return dst
}

func (g *RandomSlope) jitter(j config.JitterConfig, height float64) float64 {
	return g.Rand.Float64()*height*j.Span - height*j.Shift
}

// SinglePeak builds an evenly spaced mountain that rises linearly to the
// middle sample and falls back linearly. Points should be odd so the
// summit lands on a sample.
type SinglePeak struct {
	Points int
}

// Generate implements Generator.
func (g SinglePeak) Generate(box Box, dst []core.Vec2) []core.Vec2 {
	n := max(g.Points, 3)
	last := n - 1
	mid := float64(last) / 2
	step := box.Width / float64(last)

	for i := 0; i < n; i++ {
		rise := float64(i)
		if rise > mid {
			rise = float64(last - i)
		}
		dst = append(dst, core.V(box.X+float64(i)*step, box.Y-box.Height*rise/mid))
	}
	return dst
}
