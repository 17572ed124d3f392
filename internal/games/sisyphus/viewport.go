package sisyphus

import (
	"math"

	"github.com/vovakirdan/sisyphus/internal/config"
)

// Layout places the play area inside the terminal.
// Device pixels are half-block pixels: one column wide, half a row tall,
// which makes them roughly square.
type Layout struct {
	CanvasCols int // Play area width in screen cells
	CanvasRows int // Play area height in screen cells
	OffsetCol  int // Left edge of the play area
	OffsetRow  int // Top edge of the play area

	LogicalW float64 // World width mapped onto the play area
	LogicalH float64 // World height mapped onto the play area
}

// FitCanvas returns the play area size for a device of deviceW x deviceH
// pixels. Wide devices get a landscape area, tall devices a portrait one,
// everything in between a square; all use HeightFill of the height.
func FitCanvas(cfg config.ViewportConfig, deviceW, deviceH float64) (w, h float64) {
	if deviceW <= 0 || deviceH <= 0 {
		return 0, 0
	}
	aspect := deviceH / deviceW
	h = deviceH * cfg.HeightFill

	switch {
	case aspect < cfg.LaptopAspect:
		w = h / cfg.LaptopBase
	case aspect > cfg.MobileAspect:
		w = h / cfg.MobileBase
	default:
		w = h
	}

	// A landscape area can still overflow a slightly-too-narrow device.
	if w > deviceW {
		h *= deviceW / w
		w = deviceW
	}
	return w, h
}

// ComputeLayout fits the play area into a cols x rows terminal and derives
// the logical world size that keeps LogicalHeight fixed.
func ComputeLayout(cfg config.ViewportConfig, cols, rows int) Layout {
	w, h := FitCanvas(cfg, float64(cols), float64(rows*2))

	canvasCols := max(int(math.Round(w)), 1)
	canvasRows := max(int(math.Round(h/2)), 1)

	logicalH := cfg.LogicalHeight
	logicalW := logicalH * float64(canvasCols) / float64(canvasRows*2)

	return Layout{
		CanvasCols: canvasCols,
		CanvasRows: canvasRows,
		OffsetCol:  max((cols-canvasCols)/2, 0),
		OffsetRow:  max((rows-canvasRows)/2, 0),
		LogicalW:   logicalW,
		LogicalH:   logicalH,
	}
}

// MountainBox sizes the mountain as a share of the logical play area,
// centered horizontally with its base on cfg.BaseLine.
func MountainBox(cfg config.ViewportConfig, logicalW, logicalH float64) Box {
	width := logicalW * cfg.MountainWidth
	return Box{
		X:      (logicalW - width) / 2,
		Y:      logicalH * cfg.BaseLine,
		Width:  width,
		Height: logicalH * cfg.MountainHeight,
	}
}
