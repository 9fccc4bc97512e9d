// Package scene holds the built-in turtle programs, broken into
// individually drawable steps so they can render at once or animate frame
// by frame.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kdraman/dotgrid/internal/braille"
	"github.com/kdraman/dotgrid/internal/turtle"
)

// ErrUnknown indicates a scene name with no registration.
var ErrUnknown = errors.New("scene: unknown scene")

// A Scene is a turtle program of a fixed number of steps. Step(t, i) must
// be called in order from 0; steps that begin a stroke reposition the
// turtle with the pen up.
type Scene struct {
	Name  string
	Desc  string
	Steps int
	Step  func(t *turtle.Turtle, i int)
}

// Render runs the whole scene on a fresh turtle over a width x height
// pixel canvas and returns the frame.
func (s *Scene) Render(width, height int) string {
	t := turtle.OnCanvas(0, 0, braille.New(width, height))
	for i := 0; i < s.Steps; i++ {
		s.Step(t, i)
	}
	return t.Frame()
}

var rainbowTrue = []braille.Color{
	braille.RGB(255, 0, 0),
	braille.RGB(255, 127, 0),
	braille.RGB(255, 255, 0),
	braille.RGB(0, 255, 0),
	braille.RGB(0, 0, 255),
	braille.RGB(46, 43, 95),
	braille.RGB(139, 0, 255),
}

var rainbowNamed = []braille.Color{
	braille.Red,
	braille.Yellow,
	braille.Green,
	braille.Blue,
	braille.Magenta,
}

const arcSteps = 150

// arcStep draws step i of a multi-arc rainbow: arc n starts at x = 3n on
// row 50, heading straight up, and sweeps a half turn.
func arcStep(t *turtle.Turtle, i int, colors []braille.Color) {
	cn := i / arcSteps
	if i%arcSteps == 0 {
		t.Up()
		t.Teleport(float64(cn)*3, 50)
		t.Rotation = -90
		t.Down()
		t.Color(colors[cn])
	}
	t.Forward(1 - float64(cn)/16)
	t.Right(180.0 / arcSteps)
}

var scenes = map[string]*Scene{
	"spiral": {
		Name:  "spiral",
		Desc:  "inward monochrome spiral",
		Steps: 100,
		Step: func(t *turtle.Turtle, i int) {
			if i == 0 {
				t.Up()
				t.Teleport(50, 0)
				t.Down()
			}
			t.Forward(10 - float64(i)/10)
			t.Right(10)
		},
	},
	"rainbow": {
		Name:  "rainbow",
		Desc:  "seven truecolor arcs",
		Steps: len(rainbowTrue) * arcSteps,
		Step: func(t *turtle.Turtle, i int) {
			arcStep(t, i, rainbowTrue)
		},
	},
	"bands": {
		Name:  "bands",
		Desc:  "five arcs in the named palette",
		Steps: len(rainbowNamed) * arcSteps,
		Step: func(t *turtle.Turtle, i int) {
			arcStep(t, i, rainbowNamed)
		},
	},
	"star": {
		Name:  "star",
		Desc:  "36-point star polygon",
		Steps: 36,
		Step: func(t *turtle.Turtle, i int) {
			if i == 0 {
				t.Up()
				t.Teleport(60, 60)
				t.Down()
			}
			t.Forward(40)
			t.Right(170)
		},
	},
}

// Lookup returns the named scene, or an error wrapping ErrUnknown.
func Lookup(name string) (*Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return s, nil
}

// Names lists the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
