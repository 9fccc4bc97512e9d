package braille

// point addresses one character cell on the grid. Pixel (x, y) lives in
// cell (x/2, y/4).
type point struct {
	x, y int
}

// cell is the content of one character cell: accumulated dot bits, or a
// literal character override, plus an optional foreground color. A cell is
// either in dot mode or char mode; switching modes discards the other
// mode's data.
type cell struct {
	bits   uint8
	ch     rune
	color  Color
	isChar bool
}

// glyph resolves the cell to the single rune it renders as.
func (c *cell) glyph() rune {
	if c.isChar {
		return c.ch
	}
	if c.bits == 0 {
		return ' '
	}
	return rune(0x2800 + int(c.bits))
}

// grid is a sparse, lazily materialized cell store. Extents are unbounded:
// entries appear on first write and are only removed by clear.
type grid map[point]*cell

// at returns the cell at p, inserting a blank dot-mode cell if absent.
func (g grid) at(p point) *cell {
	c, ok := g[p]
	if !ok {
		c = &cell{ch: ' '}
		g[p] = c
	}
	return c
}

// lookup returns the cell at p without materializing it.
func (g grid) lookup(p point) (*cell, bool) {
	c, ok := g[p]
	return c, ok
}

func (g grid) clear() {
	for p := range g {
		delete(g, p)
	}
}

// extent reports the highest touched cell column and row, or (-1, -1) when
// nothing has been touched.
func (g grid) extent() (maxX, maxY int) {
	maxX, maxY = -1, -1
	for p := range g {
		if p.x > maxX {
			maxX = p.x
		}
		if p.y > maxY {
			maxY = p.y
		}
	}
	return maxX, maxY
}
