package core

import "math"

// Canvas is a 2D drawing surface addressed in logical playfield units.
// Draw calls have no return values and never fail.
type Canvas interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h float64)

	// Clear paints the whole surface with c.
	Clear(c Color)

	FillRect(r Rect, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	FillPolygon(pts []Point, c Color)

	// FillText draws text with its top-left corner at (x, y).
	FillText(x, y float64, text string, c Color)

	// MeasureText returns the logical width text would occupy.
	MeasureText(text string) float64

	// LineHeight returns the logical height of one line of text.
	LineHeight() float64
}

// FillRune is the character used for filled shapes on a terminal screen.
const FillRune = '█'

// CellCanvas rasterises logical draw calls into a Screen.
// A logical viewport of viewW × viewH is stretched over the whole screen.
type CellCanvas struct {
	screen       *Screen
	viewW, viewH float64
}

// NewCellCanvas creates a canvas drawing into screen.
func NewCellCanvas(screen *Screen, viewW, viewH float64) *CellCanvas {
	return &CellCanvas{screen: screen, viewW: viewW, viewH: viewH}
}

// Size returns the logical viewport size.
func (c *CellCanvas) Size() (float64, float64) {
	return c.viewW, c.viewH
}

func (c *CellCanvas) scale() (sx, sy float64) {
	if c.viewW <= 0 || c.viewH <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.viewW, float64(c.screen.Height()) / c.viewH
}

// cellCenter returns the logical coordinates of the center of cell (cx, cy).
func (c *CellCanvas) cellCenter(cx, cy int, sx, sy float64) (float64, float64) {
	return (float64(cx) + 0.5) / sx, (float64(cy) + 0.5) / sy
}

// cellSpan returns the cell range [lo, hi) touched by the logical span [a, b).
func cellSpan(a, b, scale float64, limit int) (int, int) {
	lo := Clamp(int(math.Floor(a*scale)), 0, limit)
	hi := Clamp(int(math.Ceil(b*scale)), 0, limit)
	return lo, hi
}

// Clear paints every cell's background with bg and blanks its contents.
func (c *CellCanvas) Clear(bg Color) {
	c.screen.Clear()
	c.screen.FillBackground(bg)
}

// FillRect fills every cell the rectangle touches, so thin obstacles stay visible.
func (c *CellCanvas) FillRect(r Rect, col Color) {
	sx, sy := c.scale()
	if sx == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := cellSpan(r.X, r.Right(), sx, c.screen.Width())
	y0, y1 := cellSpan(r.Y, r.Bottom(), sy, c.screen.Height())
	c.screen.FillArea(x0, y0, x1-x0, y1-y0, FillRune, col)
}

// FillCircle fills cells whose centers lie within the circle.
func (c *CellCanvas) FillCircle(cx, cy, radius float64, col Color) {
	if radius <= 0 {
		return
	}
	c.fillWhere(cx-radius, cy-radius, cx+radius, cy+radius, cx, cy, col, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= radius*radius
	})
}

// FillPolygon fills cells whose centers lie inside the polygon (even-odd rule).
func (c *CellCanvas) FillPolygon(pts []Point, col Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	var sumX, sumY float64
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(pts))
	c.fillWhere(minX, minY, maxX, maxY, sumX/n, sumY/n, col, func(x, y float64) bool {
		return PointInPolygon(pts, x, y)
	})
}

// fillWhere fills cells inside the logical bounds whose centers satisfy inside.
// When no cell center qualifies, the cell under (fx, fy) is filled instead so
// that small shapes never disappear at coarse resolutions.
func (c *CellCanvas) fillWhere(minX, minY, maxX, maxY, fx, fy float64, col Color, inside func(x, y float64) bool) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	x0, x1 := cellSpan(minX, maxX, sx, c.screen.Width())
	y0, y1 := cellSpan(minY, maxY, sy, c.screen.Height())

	filled := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			lx, ly := c.cellCenter(cx, cy, sx, sy)
			if inside(lx, ly) {
				c.screen.SetCell(cx, cy, FillRune, col)
				filled = true
			}
		}
	}
	if !filled {
		c.screen.SetCell(int(math.Floor(fx*sx)), int(math.Floor(fy*sy)), FillRune, col)
	}
}

// FillText writes text starting at the cell containing (x, y).
func (c *CellCanvas) FillText(x, y float64, text string, col Color) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	c.screen.DrawText(int(math.Floor(x*sx)), int(math.Floor(y*sy)), text, col)
}

// MeasureText returns the logical width of text, one cell per rune.
func (c *CellCanvas) MeasureText(text string) float64 {
	sx, _ := c.scale()
	if sx == 0 {
		return 0
	}
	return float64(len([]rune(text))) / sx
}

// LineHeight returns the logical height of one cell row.
func (c *CellCanvas) LineHeight() float64 {
	_, sy := c.scale()
	if sy == 0 {
		return 0
	}
	return 1 / sy
}

// PointInPolygon reports whether (x, y) lies inside pts using the even-odd rule.
func PointInPolygon(pts []Point, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
