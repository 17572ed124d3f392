package core

import (
	"math"
	"sort"
)

// Half-block runes used when blitting a canvas onto a screen.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a color raster with 2x vertical resolution: every screen cell
// holds two stacked pixels rendered as a half-block. Drawing calls take
// logical coordinates which are scaled to pixels.
// ColorDefault pixels are transparent and leave the screen untouched.
type Canvas struct {
	width  int     // Pixel columns (== screen columns)
	height int     // Pixel rows (== screen rows * 2)
	pixels []Color // Flat slice: [y * width + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// Reusable buffers to reduce per-frame allocations
	scaledBuf       []Vec2
	intersectionBuf []float64
}

// NewCanvas creates a canvas of cols x rows screen cells that maps a
// logicalWidth x logicalHeight coordinate space onto its pixels.
func NewCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows, logicalWidth, logicalHeight)
	return c
}

// Resize updates the pixel grid and the logical space.
func (c *Canvas) Resize(cols, rows int, logicalWidth, logicalHeight float64) {
	cols = Max(cols, 0)
	rows = Max(rows, 0)
	if cols != c.width || rows*2 != c.height {
		c.width = cols
		c.height = rows * 2
		c.pixels = make([]Color, c.width*c.height)
	}
	c.logicalWidth = logicalWidth
	c.logicalHeight = logicalHeight
	c.scaleX, c.scaleY = 0, 0
	if logicalWidth > 0 {
		c.scaleX = float64(c.width) / logicalWidth
	}
	if logicalHeight > 0 {
		c.scaleY = float64(c.height) / logicalHeight
	}
}

// PixelWidth returns the number of pixel columns.
func (c *Canvas) PixelWidth() int {
	return c.width
}

// PixelHeight returns the number of pixel rows.
func (c *Canvas) PixelHeight() int {
	return c.height
}

// LogicalWidth returns the width of the logical coordinate space.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the height of the logical coordinate space.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// At returns the pixel color at pixel coordinates.
func (c *Canvas) At(px, py int) Color {
	if px < 0 || px >= c.width || py < 0 || py >= c.height {
		return ColorDefault
	}
	return c.pixels[py*c.width+px]
}

// PixelOf converts a logical point to pixel coordinates.
func (c *Canvas) PixelOf(p Vec2) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// CellOf converts a logical point to the screen cell that displays it.
func (c *Canvas) CellOf(p Vec2) (col, row int) {
	px, py := c.PixelOf(p)
	return px, py / 2
}

func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.pixels[y*c.width+x] = col
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Vec2, col Color) {
	x1, y1 := c.PixelOf(p1)
	x2, y2 := c.PixelOf(p2)

	dx := Abs(x2 - x1)
	dy := Abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolyline strokes consecutive points, closing the path when closed is set.
func (c *Canvas) DrawPolyline(points []Vec2, closed bool, col Color) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		c.DrawLine(points[i], points[i+1], col)
	}
	if closed {
		c.DrawLine(points[n-1], points[0], col)
	}
}

// FillPolygon fills a closed polygon using a scanline algorithm in pixel space.
func (c *Canvas) FillPolygon(points []Vec2, col Color) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Vec2, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Vec2{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := Max(int(math.Floor(minY)), 0)
	yEnd := Min(int(math.Ceil(maxY)), c.height-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// FillRect fills an axis-aligned logical rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	c.FillPolygon([]Vec2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}, col)
}

// FillCircle fills a logical circle. Non-uniform scaling turns it into an
// ellipse in pixel space, which keeps it round on screen.
func (c *Canvas) FillCircle(center Vec2, radius float64, col Color) {
	if radius <= 0 {
		return
	}
	cx, cy := center.X*c.scaleX, center.Y*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := Max(int(math.Floor(cy-ry)), 0)
	yEnd := Min(int(math.Ceil(cy+ry)), c.height-1)
	xStart := Max(int(math.Floor(cx-rx)), 0)
	xEnd := Min(int(math.Ceil(cx+rx)), c.width-1)

	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := xStart; x <= xEnd; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(x, y, col)
			}
		}
	}

	// Guarantee at least the center pixel for sub-pixel circles.
	c.setPixel(int(math.Floor(cx)), int(math.Floor(cy)), col)
}

// Blit copies the canvas onto dst with its top-left cell at (col, row).
// Each pair of stacked pixels becomes one half-block cell.
func (c *Canvas) Blit(dst *Screen, col, row int) {
	rows := c.height / 2
	for r := 0; r < rows; r++ {
		topOffset := (r * 2) * c.width
		bottomOffset := topOffset + c.width
		for x := 0; x < c.width; x++ {
			top := c.pixels[topOffset+x]
			bottom := c.pixels[bottomOffset+x]

			var cell Cell
			switch {
			case top == ColorDefault && bottom == ColorDefault:
				continue
			case top == bottom:
				cell = Cell{Rune: BlockFull, Fg: top}
			case bottom == ColorDefault:
				cell = Cell{Rune: BlockUpperHalf, Fg: top}
			case top == ColorDefault:
				cell = Cell{Rune: BlockLowerHalf, Fg: bottom}
			default:
				cell = Cell{Rune: BlockUpperHalf, Fg: top, Bg: bottom}
			}
			dst.SetCell(col+x, row+r, cell)
		}
	}
}
