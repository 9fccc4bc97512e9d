package braille

// Point is a pixel coordinate. The drawing surface is logically unbounded
// in +x and +y; negative values are valid intermediates but never reach
// the grid.
type Point struct {
	X, Y int
}

// LinePoints rasterizes the segment (x1, y1)-(x2, y2), inclusive of both
// endpoints. It steps once per unit along the dominant axis, so it always
// yields max(|dx|, |dy|)+1 points and consecutive points differ by at most
// one per axis.
func LinePoints(x1, y1, x2, y2 int) []Point {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x2 < x1 {
		sx = -1
	}
	if y2 < y1 {
		sy = -1
	}

	r := dx
	if dy > r {
		r = dy
	}

	pts := make([]Point, 0, r+1)
	for i := 0; i <= r; i++ {
		x, y := x1, y1
		if dx != 0 {
			x += i * dx / r * sx
		}
		if dy != 0 {
			y += i * dy / r * sy
		}
		pts = append(pts, Point{x, y})
	}
	return pts
}

// EllipsePoints rasterizes the axis-aligned ellipse centered at (cx, cy)
// with radii rx and ry using the midpoint method, mirroring each boundary
// point across both center axes. A mirror that would land at a negative
// coordinate is dropped.
func EllipsePoints(cx, cy, rx, ry int) []Point {
	if rx == 0 && ry == 0 {
		// A point ellipse would never advance the stepping loop.
		return []Point{{cx, cy}}
	}
	a2 := rx * rx
	b2 := ry * ry
	dx, dy := 0, ry
	err := b2 - (2*ry-1)*a2

	var pts []Point
	for {
		pts = append(pts, Point{cx + dx, cy + dy})
		if cx >= dx {
			pts = append(pts, Point{cx - dx, cy + dy})
			if cy >= dy {
				pts = append(pts, Point{cx - dx, cy - dy})
			}
		}
		if cy >= dy {
			pts = append(pts, Point{cx + dx, cy - dy})
		}

		e2 := 2 * err
		if step := (2*dx + 1) * b2; e2 < step {
			dx++
			err += step
		}
		if step := (2*dy - 1) * a2; e2 > -step {
			if dy <= 1 {
				break
			}
			dy--
			err -= step
		}
	}

	// Very eccentric ellipses leave the horizontal caps unreached; fill
	// them along the center row.
	for dx < rx {
		dx++
		pts = append(pts, Point{cx + dx, cy})
		if cx >= dx {
			pts = append(pts, Point{cx - dx, cy})
		}
	}
	return pts
}

// ellipseBounds converts a bounding box, given in either corner order, to
// the center and radii of its inscribed ellipse.
func ellipseBounds(x1, y1, x2, y2 int) (cx, cy, rx, ry int) {
	dx := (x1 - x2) / 2
	dy := (y1 - y2) / 2
	return x2 + dx, y2 + dy, abs(dx), abs(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
