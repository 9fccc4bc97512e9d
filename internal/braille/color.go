package braille

import (
	"fmt"
	"strconv"
	"strings"
)

const sgrReset = "\x1b[0m"

type colorMode uint8

const (
	colorNone colorMode = iota
	colorNamed
	colorRGB
)

// Color selects the foreground color a cell's glyph is rendered with. The
// zero value leaves the glyph uncolored. Values pass through to the
// terminal untouched; no capability detection is performed.
type Color struct {
	code    uint8 // SGR foreground code for named colors
	r, g, b uint8
	mode    colorMode
}

// Named colors from the standard SGR palette.
var (
	Black   = Color{code: 30, mode: colorNamed}
	Red     = Color{code: 31, mode: colorNamed}
	Green   = Color{code: 32, mode: colorNamed}
	Yellow  = Color{code: 33, mode: colorNamed}
	Blue    = Color{code: 34, mode: colorNamed}
	Magenta = Color{code: 35, mode: colorNamed}
	Cyan    = Color{code: 36, mode: colorNamed}
	White   = Color{code: 37, mode: colorNamed}

	BrightBlack   = Color{code: 90, mode: colorNamed}
	BrightRed     = Color{code: 91, mode: colorNamed}
	BrightGreen   = Color{code: 92, mode: colorNamed}
	BrightYellow  = Color{code: 93, mode: colorNamed}
	BrightBlue    = Color{code: 94, mode: colorNamed}
	BrightMagenta = Color{code: 95, mode: colorNamed}
	BrightCyan    = Color{code: 96, mode: colorNamed}
	BrightWhite   = Color{code: 97, mode: colorNamed}
)

var named = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, mode: colorRGB}
}

// ParseColor accepts a lowercase palette name ("red", "cyan", ...) or a
// "#rrggbb" hex triple.
func ParseColor(s string) (Color, error) {
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
	}
	return Color{}, fmt.Errorf("braille: unknown color %q", s)
}

// IsZero reports whether c is the uncolored zero value.
func (c Color) IsZero() bool { return c.mode == colorNone }

// wrap surrounds glyph with the color's escape sequence and a reset, so
// each colored glyph is self-contained.
func (c Color) wrap(glyph rune) string {
	switch c.mode {
	case colorNamed:
		return fmt.Sprintf("\x1b[%dm%c%s", c.code, glyph, sgrReset)
	case colorRGB:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c%s", c.r, c.g, c.b, glyph, sgrReset)
	}
	return string(glyph)
}
