// Package matrix builds coordinate transformation matrices for touch panels.
//
// A touch panel reports positions normalized to 0..1 on both axes. When the
// panel covers only one screen of a multi-screen canvas, or that screen is
// rotated, the input needs an affine transform that maps the panel's unit
// square onto the screen's rectangle of the canvas. [Build] computes that
// transform in the 3×3 row-major form used by the X input "Coordinate
// Transformation Matrix" property.
//
// The four rotations are written out as closed forms instead of composing a
// rotation with a scale and a translation, so entries that must be zero are
// exactly zero.
package matrix
