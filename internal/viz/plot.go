package viz

import "github.com/kdraman/dotgrid/internal/braille"

// PlotSeries charts values as a braille polyline over a width x height
// pixel area: index along x, value along y, larger values higher. The
// series is scaled to fill the vertical range.
func PlotSeries(values []float64, width, height int) string {
	c := braille.New(width, height)
	if len(values) == 0 || width < 2 || height < 4 {
		return c.Frame()
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	px := func(i int) int {
		if len(values) == 1 {
			return 0
		}
		return i * (width - 1) / (len(values) - 1)
	}
	py := func(v float64) int {
		return int((max - v) / rng * float64(height-1))
	}

	prevX, prevY := px(0), py(values[0])
	c.Set(prevX, prevY)
	for i := 1; i < len(values); i++ {
		x, y := px(i), py(values[i])
		c.Line(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
	return c.Frame()
}
