// Package viz provides the terminal presentation layer: a Bubble Tea
// player that animates scenes step by step ([Run]), lipgloss chrome
// themes, and a braille series chart ([PlotSeries]).
//
// # Key Bindings
//
//	Space - Pause/Resume drawing
//	R     - Restart the scene
//	T     - Cycle chrome themes
//	?     - Toggle help
//	Q     - Quit
package viz
