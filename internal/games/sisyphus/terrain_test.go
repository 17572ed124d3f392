package sisyphus

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/core"
)

const epsilon = 1e-9

// peakBox is the reference mountain: origin (100, 500), 600 wide, 400 tall.
var peakBox = Box{X: 100, Y: 500, Width: 600, Height: 400}

func peakTerrain() *Terrain {
	return NewTerrain(peakBox, SinglePeak{Points: 41})
}

func randomTerrain(seed int64) *Terrain {
	cfg := config.DefaultSisyphusConfig().Terrain
	return NewTerrain(peakBox, NewGenerator(cfg, rand.New(rand.NewSource(seed))))
}

func TestSinglePeakHeights(t *testing.T) {
	terrain := peakTerrain()

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left base", 100, 500},
		{"peak", 400, 100},
		{"right base", 700, 500},
		{"between samples", 107.5, 490},
		{"left of terrain", 50, 500},
		{"right of terrain", 800, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := terrain.HeightAt(tt.x)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("HeightAt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	if terrain.PeakY() != 100 || terrain.PeakX() != 400 {
		t.Errorf("peak = (%v, %v), want (400, 100)", terrain.PeakX(), terrain.PeakY())
	}
}

func TestHeightAtInterpolatesEverySegment(t *testing.T) {
	terrain := randomTerrain(7)

	for i := 0; i+1 < len(terrain.Points); i++ {
		p1, p2 := terrain.Points[i], terrain.Points[i+1]
		x := p1.X + (p2.X-p1.X)*0.25
		want := p1.Y + (p2.Y-p1.Y)*0.25
		if got := terrain.HeightAt(x); math.Abs(got-want) > epsilon {
			t.Errorf("segment %d: HeightAt(%v) = %v, want %v", i, x, got, want)
		}
	}
}

func TestHeightAtFallsBackWithFewPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []core.Vec2
	}{
		{"no points", nil},
		{"one point", []core.Vec2{{X: 100, Y: 400}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terrain := &Terrain{Box: peakBox, Points: tt.points}
			if got := terrain.HeightAt(100); got != peakBox.Y {
				t.Errorf("HeightAt = %v, want base %v", got, peakBox.Y)
			}
		})
	}
}

func TestRandomSlopeXStrictlyIncreasing(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		terrain := randomTerrain(seed)
		if len(terrain.Points) != 41 {
			t.Fatalf("seed %d: got %d points, want 41", seed, len(terrain.Points))
		}
		for i := 1; i < len(terrain.Points); i++ {
			if terrain.Points[i].X <= terrain.Points[i-1].X {
				t.Fatalf("seed %d: x not increasing at %d: %v <= %v",
					seed, i, terrain.Points[i].X, terrain.Points[i-1].X)
			}
		}
	}
}

func TestRandomSlopeJitterBounds(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Terrain
	terrain := randomTerrain(3)
	n := cfg.PointsPerSide
	h := peakBox.Height

	for i, p := range terrain.Points {
		var line float64
		j := cfg.LeftJitter
		if i <= n {
			line = peakBox.Y - float64(i)/float64(n)*h
		} else {
			line = peakBox.Y - h + float64(i-n)/float64(n)*h
			j = cfg.RightJitter
		}
		offset := p.Y - line
		if offset < -h*j.Shift-epsilon || offset > h*j.Span-h*j.Shift+epsilon {
			t.Errorf("point %d: offset %v outside jitter range", i, offset)
		}
	}
}

func TestRandomSlopeDeterministicPerSeed(t *testing.T) {
	a, b := randomTerrain(42), randomTerrain(42)
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs for the same seed: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}

	c := randomTerrain(43)
	same := true
	for i := range a.Points {
		if a.Points[i] != c.Points[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestRegenerateRebuildsForNewBox(t *testing.T) {
	terrain := peakTerrain()
	box := Box{X: 20, Y: 250, Width: 300, Height: 200}
	terrain.Regenerate(box)

	if len(terrain.Points) != 41 {
		t.Fatalf("got %d points after regenerate, want 41", len(terrain.Points))
	}
	first, last := terrain.Points[0], terrain.Points[len(terrain.Points)-1]
	if first.X != 20 || last.X != 320 {
		t.Errorf("x range = [%v, %v], want [20, 320]", first.X, last.X)
	}
	if terrain.Left() != 20 || terrain.Right() != 320 || terrain.BaseY() != 250 {
		t.Errorf("box not updated: %+v", terrain.Box)
	}
}

func TestNewGeneratorPolicy(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Terrain
	rng := rand.New(rand.NewSource(1))

	if _, ok := NewGenerator(cfg, rng).(*RandomSlope); !ok {
		t.Error("random policy should build a RandomSlope")
	}

	cfg.Policy = config.PolicyPeak
	if _, ok := NewGenerator(cfg, rng).(SinglePeak); !ok {
		t.Error("peak policy should build a SinglePeak")
	}
}
