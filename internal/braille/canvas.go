package braille

import "strings"

// Dot bit layout inside a cell, rows top to bottom, left column then
// right:
//
//	0x01 0x08
//	0x02 0x10
//	0x04 0x20
//	0x40 0x80
//
// Code point = 0x2800 + bits.
var pixelMap = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a sparse, unbounded drawing surface addressed in pixels and
// rendered as Braille character cells. Writing past the configured size
// grows the rendered area; the configured size is only a floor, and it
// rounds down to whole cells (2 pixels per column, 4 per row).
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	cells grid
	minW  int // cell column rendered even when untouched, inclusive
	minH  int // cell row rendered even when untouched, inclusive
}

// New returns an empty Canvas sized for a width x height pixel area.
func New(width, height int) *Canvas {
	return &Canvas{
		cells: make(grid),
		minW:  width / 2,
		minH:  height / 4,
	}
}

// SetSize resets the minimum rendered extent from pixel dimensions.
// Already-drawn cells outside the new extent remain visible.
func (c *Canvas) SetSize(width, height int) {
	c.minW = width / 2
	c.minH = height / 4
}

// Clear removes every cell, keeping the configured minimum extent.
func (c *Canvas) Clear() {
	c.cells.clear()
}

func cellAt(x, y int) (point, uint8) {
	return point{x / 2, y / 4}, pixelMap[y%4][x%2]
}

// Set turns on the dot at (x, y). The containing cell switches to dot
// mode, dropping any character override. Negative coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	p, bit := cellAt(x, y)
	cl := c.cells.at(p)
	if cl.isChar {
		cl.isChar = false
		cl.ch = ' '
	}
	cl.bits |= bit
}

// SetColored is Set plus a foreground color for the whole containing
// cell. The last written color wins; there is no blending.
func (c *Canvas) SetColored(x, y int, col Color) {
	if x < 0 || y < 0 {
		return
	}
	c.Set(x, y)
	p, _ := cellAt(x, y)
	c.cells.at(p).color = col
}

// SetChar renders the whole cell containing (x, y) as the literal
// character ch, dropping any accumulated dots.
func (c *Canvas) SetChar(x, y int, ch rune) {
	if x < 0 || y < 0 {
		return
	}
	p, _ := cellAt(x, y)
	cl := c.cells.at(p)
	cl.isChar = true
	cl.ch = ch
	cl.bits = 0
}

// Unset turns off the dot at (x, y), leaving the rest of the cell alone.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	p, bit := cellAt(x, y)
	c.cells.at(p).bits &^= bit
}

// Toggle flips the dot at (x, y).
func (c *Canvas) Toggle(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	p, bit := cellAt(x, y)
	c.cells.at(p).bits ^= bit
}

// Get reports whether the dot at (x, y) is on. Untouched cells read as
// off.
func (c *Canvas) Get(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	p, bit := cellAt(x, y)
	cl, ok := c.cells.lookup(p)
	return ok && cl.bits&bit != 0
}

// Text writes s horizontally starting at (x, y), one cell per character,
// stopping once the cursor has advanced past maxWidth pixels.
func (c *Canvas) Text(x, y, maxWidth int, s string) {
	offset := 0
	for _, ch := range s {
		if offset > maxWidth {
			break
		}
		c.SetChar(x+offset, y, ch)
		offset += 2
	}
}

// Line draws the segment (x1, y1)-(x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	for _, p := range LinePoints(x1, y1, x2, y2) {
		c.Set(p.X, p.Y)
	}
}

// LineColored draws a line with every touched cell tagged col.
func (c *Canvas) LineColored(x1, y1, x2, y2 int, col Color) {
	for _, p := range LinePoints(x1, y1, x2, y2) {
		c.SetColored(p.X, p.Y, col)
	}
}

// Rectangle draws the axis-aligned rectangle with opposite corners
// (x1, y1) and (x2, y2).
func (c *Canvas) Rectangle(x1, y1, x2, y2 int) {
	c.Line(x1, y1, x2, y1)
	c.Line(x1, y1, x1, y2)
	c.Line(x1, y2, x2, y2)
	c.Line(x2, y1, x2, y2)
}

// EllipseCenter draws an ellipse centered at (cx, cy) with radii rx and
// ry.
func (c *Canvas) EllipseCenter(cx, cy, rx, ry int) {
	for _, p := range EllipsePoints(cx, cy, rx, ry) {
		c.Set(p.X, p.Y)
	}
}

// EllipseBox draws the ellipse inscribed in the box spanned by (x1, y1)
// and (x2, y2), in either corner order.
func (c *Canvas) EllipseBox(x1, y1, x2, y2 int) {
	cx, cy, rx, ry := ellipseBounds(x1, y1, x2, y2)
	c.EllipseCenter(cx, cy, rx, ry)
}

// Rows renders the canvas one string per cell row, covering cell 0
// through the larger of the configured minimum and the highest cell
// touched, inclusive on both axes.
func (c *Canvas) Rows() []string {
	maxX, maxY := c.cells.extent()
	if maxX < c.minW {
		maxX = c.minW
	}
	if maxY < c.minH {
		maxY = c.minH
	}

	rows := make([]string, 0, maxY+1)
	var b strings.Builder
	for y := 0; y <= maxY; y++ {
		b.Reset()
		for x := 0; x <= maxX; x++ {
			cl, ok := c.cells.lookup(point{x, y})
			if !ok {
				b.WriteByte(' ')
				continue
			}
			g := cl.glyph()
			if cl.color.IsZero() {
				b.WriteRune(g)
			} else {
				b.WriteString(cl.color.wrap(g))
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Frame renders the whole canvas as one newline-joined string, ready to
// print. There is no trailing newline.
func (c *Canvas) Frame() string {
	return strings.Join(c.Rows(), "\n")
}
