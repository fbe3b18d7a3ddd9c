// Package grid provides the sparse character grid that scenes are composed
// onto.
//
// A [Grid] has a fixed extent of Cols x Rows. Cells are written with
// [Grid.Place] using two paint classes:
//
//   - [Object]: always overwrites whatever is stored at the key
//   - [Wash]: only fills a key that is still empty (first wash wins)
//
// Writes outside the extent are silently dropped. Grids are meant to be
// [Grid.Reset] and rebuilt every frame.
package grid
