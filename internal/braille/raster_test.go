package braille

import "testing"

func TestLinePointsProperties(t *testing.T) {
	cases := []struct{ x1, y1, x2, y2 int }{
		{0, 0, 0, 0},
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{2, 2, 8, 8},
		{8, 8, 2, 2},
		{0, 0, 10, 3},
		{10, 3, 0, 0},
		{5, 0, 0, 9},
		{7, 7, 7, 2},
		{0, 5, 12, 5},
	}
	for _, tc := range cases {
		pts := LinePoints(tc.x1, tc.y1, tc.x2, tc.y2)

		r := abs(tc.x2 - tc.x1)
		if d := abs(tc.y2 - tc.y1); d > r {
			r = d
		}
		if len(pts) != r+1 {
			t.Errorf("(%d,%d)-(%d,%d): expected %d points, got %d",
				tc.x1, tc.y1, tc.x2, tc.y2, r+1, len(pts))
			continue
		}
		if pts[0] != (Point{tc.x1, tc.y1}) {
			t.Errorf("(%d,%d)-(%d,%d): first point %v", tc.x1, tc.y1, tc.x2, tc.y2, pts[0])
		}
		if pts[len(pts)-1] != (Point{tc.x2, tc.y2}) {
			t.Errorf("(%d,%d)-(%d,%d): last point %v", tc.x1, tc.y1, tc.x2, tc.y2, pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			if abs(pts[i].X-pts[i-1].X) > 1 || abs(pts[i].Y-pts[i-1].Y) > 1 {
				t.Errorf("(%d,%d)-(%d,%d): gap between %v and %v",
					tc.x1, tc.y1, tc.x2, tc.y2, pts[i-1], pts[i])
			}
		}
	}
}

func TestEllipsePointsSymmetry(t *testing.T) {
	const cx, cy, rx, ry = 20, 12, 9, 5
	pts := EllipsePoints(cx, cy, rx, ry)
	set := make(map[Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}

	for _, p := range pts {
		if mx := 2*cx - p.X; mx >= 0 && !set[Point{mx, p.Y}] {
			t.Errorf("missing x mirror (%d,%d) of %v", mx, p.Y, p)
		}
		if my := 2*cy - p.Y; my >= 0 && !set[Point{p.X, my}] {
			t.Errorf("missing y mirror (%d,%d) of %v", p.X, my, p)
		}
	}

	if !set[Point{cx, cy + ry}] || !set[Point{cx, cy - ry}] {
		t.Error("expected top and bottom extreme points")
	}
}

func TestEllipsePointsDropsUnderflow(t *testing.T) {
	pts := EllipsePoints(2, 3, 6, 6)
	if len(pts) == 0 {
		t.Fatal("expected boundary points")
	}
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 {
			t.Errorf("underflowing mirror leaked through: %v", p)
		}
	}
}

func TestEllipsePointsDegenerate(t *testing.T) {
	pts := EllipsePoints(5, 5, 0, 0)
	if len(pts) != 1 || pts[0] != (Point{5, 5}) {
		t.Errorf("expected the center only, got %v", pts)
	}

	// Zero height collapses to a horizontal diameter.
	for _, p := range EllipsePoints(10, 4, 6, 0) {
		if p.Y != 4 {
			t.Errorf("flat ellipse left its row: %v", p)
		}
	}
}

func TestEllipseBoundsCornerOrder(t *testing.T) {
	cx1, cy1, rx1, ry1 := ellipseBounds(10, 10, 30, 20)
	cx2, cy2, rx2, ry2 := ellipseBounds(30, 20, 10, 10)
	if cx1 != cx2 || cy1 != cy2 || rx1 != rx2 || ry1 != ry2 {
		t.Errorf("corner order changed the bounds: (%d,%d,%d,%d) vs (%d,%d,%d,%d)",
			cx1, cy1, rx1, ry1, cx2, cy2, rx2, ry2)
	}
	if cx1 != 20 || cy1 != 15 || rx1 != 10 || ry1 != 5 {
		t.Errorf("unexpected bounds (%d,%d,%d,%d)", cx1, cy1, rx1, ry1)
	}
}
