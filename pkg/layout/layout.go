// Package layout places screens on a virtual canvas.
//
// Screens are laid out left to right in a single row, so the canvas is as
// wide as the sum of the screens' canvas widths and as tall as the tallest
// screen. Screens rotated by 90° or 270° occupy their height horizontally.
//
// [Resolve] computes the canvas and the placement of the screen the touch
// panel is mounted on.
//
// # Origin of rotated neighbours
//
// The horizontal origin of the target screen is the sum of the raw, unrotated
// widths of the screens to its left, even when one of those screens is
// rotated by 90° or 270° and so occupies its height on the canvas. Existing
// calibrations depend on this, so it is kept as is. [Quirk] reports whether
// a layout is affected.
package layout

import (
	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// Canvas is the bounding box of all screens.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Placement is the target screen's rectangle on the canvas.
// Width and Height are rotation-adjusted.
type Placement struct {
	OriginX int `json:"x"`
	OriginY int `json:"y"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// Resolve computes the canvas of screens and the placement of screens[target].
func Resolve(screens []screen.Spec, target int) (Canvas, Placement, error) {
	if len(screens) == 0 {
		return Canvas{}, Placement{}, errors.New(errors.ErrCodeEmptyLayout, "no screens given")
	}
	if target < 0 || target >= len(screens) {
		return Canvas{}, Placement{}, errors.New(errors.ErrCodeInvalidIndex,
			"touchscreen index %d out of range (have %d screens)", target, len(screens))
	}

	var c Canvas
	var p Placement
	for i, s := range screens {
		w, h := s.CanvasSize()
		c.Width += w
		if h > c.Height {
			c.Height = h
		}
		if i < target {
			// raw width, see package doc
			p.OriginX += s.Width
		}
	}

	p.Width, p.Height = screens[target].CanvasSize()
	return c, p, nil
}

// Quirk reports whether a screen left of target is rotated by 90° or 270°,
// in which case the target's origin differs from its true canvas position.
// It returns the offset that the rotated neighbours add compared to their
// canvas footprint.
func Quirk(screens []screen.Spec, target int) (affected bool, delta int) {
	for i := 0; i < target && i < len(screens); i++ {
		s := screens[i]
		if s.Rotation.Swapped() && s.Width != s.Height {
			affected = true
			delta += s.Width - s.Height
		}
	}
	return affected, delta
}
