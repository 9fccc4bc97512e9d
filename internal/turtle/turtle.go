// Package turtle provides a stateful drawing cursor over a braille
// canvas: position, heading, pen state and stroke color, with movement
// issuing canvas line draws as a side effect.
package turtle

import (
	"math"

	"github.com/kdraman/dotgrid/internal/braille"
)

// Turtle walks a braille.Canvas drawing lines. Position is real-valued
// and may go negative; only drawing is clamped to the canvas's
// non-negative pixel domain. The heading is in degrees, 0 along +x,
// increasing clockwise since y grows downward, and accumulates without
// normalization.
type Turtle struct {
	X, Y     float64
	Rotation float64

	canvas *braille.Canvas
	pen    bool
	color  braille.Color
}

// New returns a Turtle at (x, y) on a fresh unbounded canvas, pen down,
// facing right.
func New(x, y float64) *Turtle {
	return OnCanvas(x, y, braille.New(0, 0))
}

// OnCanvas returns a Turtle drawing on the supplied canvas, pen down,
// facing right.
func OnCanvas(x, y float64, cvs *braille.Canvas) *Turtle {
	return &Turtle{X: x, Y: y, canvas: cvs, pen: true}
}

// Canvas exposes the turtle's drawing surface.
func (t *Turtle) Canvas() *braille.Canvas { return t.canvas }

// Up lifts the pen; subsequent moves stop drawing.
func (t *Turtle) Up() { t.pen = false }

// Down lowers the pen.
func (t *Turtle) Down() { t.pen = true }

// Toggle flips the pen state.
func (t *Turtle) Toggle() { t.pen = !t.pen }

// Pen reports whether the pen is down.
func (t *Turtle) Pen() bool { return t.pen }

// Color makes subsequent strokes draw in col. Pen and color are
// independent: color only changes how a stroke renders, never whether it
// happens.
func (t *Turtle) Color(col braille.Color) { t.color = col }

// CleanBrush reverts to uncolored strokes.
func (t *Turtle) CleanBrush() { t.color = braille.Color{} }

// Forward moves dist steps along the current heading.
func (t *Turtle) Forward(dist float64) {
	rad := t.Rotation * math.Pi / 180
	t.Teleport(t.X+math.Cos(rad)*dist, t.Y+math.Sin(rad)*dist)
}

// Back moves dist steps against the current heading.
func (t *Turtle) Back(dist float64) {
	t.Forward(-dist)
}

// Teleport moves the turtle to (x, y). With the pen down it first draws
// the segment from the rounded current position to the rounded
// destination, both clamped to non-negative pixels; the stored position
// always becomes the exact requested coordinates, pen or no pen.
func (t *Turtle) Teleport(x, y float64) {
	if t.pen {
		x1, y1 := clampRound(t.X), clampRound(t.Y)
		x2, y2 := clampRound(x), clampRound(y)
		if t.color.IsZero() {
			t.canvas.Line(x1, y1, x2, y2)
		} else {
			t.canvas.LineColored(x1, y1, x2, y2, t.color)
		}
	}
	t.X = x
	t.Y = y
}

// Right turns clockwise by angle degrees.
func (t *Turtle) Right(angle float64) { t.Rotation += angle }

// Left turns counterclockwise by angle degrees.
func (t *Turtle) Left(angle float64) { t.Rotation -= angle }

// Frame renders the turtle's canvas.
func (t *Turtle) Frame() string { return t.canvas.Frame() }

func clampRound(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	return n
}
