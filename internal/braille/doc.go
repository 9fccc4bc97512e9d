// Package braille renders vector primitives onto a terminal-sized grid of
// Unicode Braille patterns, giving a 2x4 sub-character pixel resolution
// per monospace cell.
//
// The package is built from three layers:
//
//   - a sparse cell store mapping cell coordinates to dot bitmasks,
//     character overrides and color tags
//   - pure rasterizers ([LinePoints], [EllipsePoints]) turning shape
//     parameters into pixel sequences
//   - [Canvas], which composes the two and serializes to text rows
//
// # Example
//
//	c := braille.New(100, 100)
//	c.Line(2, 2, 80, 80)
//	c.EllipseCenter(40, 40, 30, 20)
//	fmt.Println(c.Frame())
//
// # Thread Safety
//
// Canvas instances are NOT thread-safe; callers sharing one across
// goroutines must serialize access themselves.
package braille
