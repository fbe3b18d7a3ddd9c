// Package viz plays scenes in the terminal using the Bubble Tea framework.
//
//   - [Model]: plays one scene on a terminal surface, driven by a frame tick
//   - [Picker]: scene and preset menu that hands over to a [Model]
//   - [Canvas]: Braille canvas used for the stats panel minimap
//   - Theme selection with 4 built-in colour schemes
//
// # Key Bindings
//
//	H - Toggle hover (speeds up the vignette)
//	S - Toggle stats panel
//	T - Cycle color themes
//	G - Toggle GIF recording
//	? - Show help overlay
//	Q - Quit
//
// # Events
//
// Mouse motion over the scene moves the pointer; leaving the scene or
// losing focus parks it. Window resizes rebuild the surface at once and a
// 100ms settle tick clears the resizing indicator after the last resize.
// Fonts load in the background and trigger a single text relayout.
package viz
