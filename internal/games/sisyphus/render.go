package sisyphus

import "github.com/vovakirdan/sisyphus/internal/core"

// Scene colors.
const (
	colorSky      = core.ColorSky
	colorMountain = core.ColorBrown
	colorFigure   = core.ColorRed
	colorStone    = core.ColorStone
)

// DrawScene paints the simulation onto cv: sky, mountain, character, then
// the stone in front. It reads sim and never mutates it. path is scratch
// space for the stone outline and is returned for reuse.
func DrawScene(cv *core.Canvas, sim *Sim, segments int, path []core.Vec2) []core.Vec2 {
	cv.Fill(colorSky)

	drawMountain(cv, sim.Terrain)
	drawCharacter(cv, sim.Character)

	path = sim.Stone.Path(path[:0], segments)
	cv.FillPolygon(path, colorStone)
	cv.DrawPolyline(path, true, colorStone)

	return path
}

// drawMountain fills the band under the slope down to the canvas bottom.
func drawMountain(cv *core.Canvas, t *Terrain) {
	if len(t.Points) < 2 {
		return
	}
	bottom := cv.LogicalHeight()
	poly := make([]core.Vec2, 0, len(t.Points)+2)
	poly = append(poly, t.Points...)
	poly = append(poly, core.V(t.Right(), bottom), core.V(t.Left(), bottom))
	cv.FillPolygon(poly, colorMountain)
}

func drawCharacter(cv *core.Canvas, c *Character) {
	cv.FillRect(c.Pos.X, c.Pos.Y-c.Height, c.Width, c.Height, colorFigure)
	head := core.V(c.Pos.X+c.Width/2, c.Pos.Y-c.Height-c.HeadRadius)
	cv.FillCircle(head, c.HeadRadius, colorFigure)
}
