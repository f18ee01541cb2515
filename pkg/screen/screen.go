package screen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/touchmatrix/pkg/errors"
)

// MaxScreens is the maximum number of screens in a setup.
const MaxScreens = 4

// Spec describes one physical screen.
type Spec struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Rotation Rotation `json:"rotation"`
}

// String returns the screen as "WxH" followed by its rotation when not normal.
func (s Spec) String() string {
	if s.Rotation == Normal {
		return fmt.Sprintf("%dx%d", s.Width, s.Height)
	}
	return fmt.Sprintf("%dx%d %s", s.Width, s.Height, s.Rotation)
}

// CanvasSize returns the space the screen occupies on the canvas,
// with width and height exchanged for 90° and 270° rotations.
func (s Spec) CanvasSize() (width, height int) {
	if s.Rotation.Swapped() {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}

// ParseResolution parses a "WxH" token into an unrotated Spec.
// Both dimensions must be positive integers.
func ParseResolution(token string) (Spec, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(token)), "x")
	if !ok {
		return Spec{}, invalidResolution(token)
	}
	width, ok := parseDimension(w)
	if !ok {
		return Spec{}, invalidResolution(token)
	}
	height, ok := parseDimension(h)
	if !ok {
		return Spec{}, invalidResolution(token)
	}
	return Spec{Width: width, Height: height}, nil
}

// parseDimension accepts only unsigned decimal digits with a positive value.
func parseDimension(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func invalidResolution(token string) error {
	return errors.New(errors.ErrCodeInvalidResolution, "invalid resolution: %s (expected WxH)", token)
}

// Validate checks that screens is a usable setup: between one and
// MaxScreens entries, each with positive dimensions and a defined rotation.
func Validate(screens []Spec) error {
	if len(screens) == 0 {
		return errors.New(errors.ErrCodeEmptyLayout, "no screens given")
	}
	if len(screens) > MaxScreens {
		return errors.New(errors.ErrCodeTooManyScreens, "too many screens: %d (max %d)", len(screens), MaxScreens)
	}
	for i, s := range screens {
		if s.Width <= 0 || s.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidResolution, "screen %d: invalid resolution %dx%d", i, s.Width, s.Height)
		}
		if !s.Rotation.Valid() {
			return errors.New(errors.ErrCodeUnsupportedRotation, "screen %d: unsupported rotation %d", i, int(s.Rotation))
		}
	}
	return nil
}
