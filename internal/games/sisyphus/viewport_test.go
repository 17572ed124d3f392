package sisyphus

import (
	"math"
	"testing"

	"github.com/vovakirdan/sisyphus/internal/config"
)

func TestFitCanvasBreakpoints(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Viewport

	tests := []struct {
		name         string
		w, h         float64
		wantW, wantH float64
	}{
		{"laptop", 200, 100, 80 / 0.75, 80},
		{"square", 100, 100, 80, 80},
		{"mobile", 100, 200, 160 / 1.5, 160},
		{"very tall fits width", 100, 400, 100, 150},
		{"empty", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitCanvas(cfg, tt.w, tt.h)
			if math.Abs(w-tt.wantW) > 1e-6 || math.Abs(h-tt.wantH) > 1e-6 {
				t.Errorf("FitCanvas(%v, %v) = (%v, %v), want (%v, %v)",
					tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestComputeLayout(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Viewport
	l := ComputeLayout(cfg, 80, 23)

	if l.CanvasCols != 49 || l.CanvasRows != 18 {
		t.Errorf("canvas = %dx%d, want 49x18", l.CanvasCols, l.CanvasRows)
	}
	if l.OffsetCol != 15 || l.OffsetRow != 2 {
		t.Errorf("offset = (%d, %d), want (15, 2)", l.OffsetCol, l.OffsetRow)
	}
	if l.LogicalH != cfg.LogicalHeight {
		t.Errorf("logical height = %v, want %v", l.LogicalH, cfg.LogicalHeight)
	}

	// Logical units stay square on screen.
	got := l.LogicalW / l.LogicalH
	want := float64(l.CanvasCols) / float64(l.CanvasRows*2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("logical aspect = %v, want %v", got, want)
	}
}

func TestComputeLayoutTinyTerminal(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Viewport
	l := ComputeLayout(cfg, 1, 1)

	if l.CanvasCols < 1 || l.CanvasRows < 1 {
		t.Errorf("canvas = %dx%d, want at least 1x1", l.CanvasCols, l.CanvasRows)
	}
	if l.OffsetCol < 0 || l.OffsetRow < 0 {
		t.Errorf("negative offset (%d, %d)", l.OffsetCol, l.OffsetRow)
	}
}

func TestMountainBox(t *testing.T) {
	cfg := config.DefaultSisyphusConfig().Viewport
	box := MountainBox(cfg, 400, 300)

	want := Box{X: 60, Y: 270, Width: 280, Height: 240}
	const tol = 1e-9
	if math.Abs(box.X-want.X) > tol || math.Abs(box.Y-want.Y) > tol ||
		math.Abs(box.Width-want.Width) > tol || math.Abs(box.Height-want.Height) > tol {
		t.Errorf("MountainBox = %+v, want %+v", box, want)
	}
}
