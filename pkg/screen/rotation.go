package screen

import (
	"strings"

	"github.com/matzehuels/touchmatrix/pkg/errors"
)

// Rotation is the clockwise rotation of a screen's output.
type Rotation int

// Supported rotations. The numeric values match the RandR rotation order.
const (
	Normal   Rotation = iota // 0°
	Left                     // 90°
	Inverted                 // 180°
	Right                    // 270°
)

// rotationNames maps each Rotation to its canonical name, indexed by value.
var rotationNames = [...]string{
	Normal:   "normal",
	Left:     "left",
	Inverted: "inverted",
	Right:    "right",
}

// RotationNames returns the recognized rotation names in rotation order.
func RotationNames() []string {
	return append([]string(nil), rotationNames[:]...)
}

// String returns the canonical lower-case name of r.
func (r Rotation) String() string {
	if r.Valid() {
		return rotationNames[r]
	}
	return "unknown"
}

// Valid reports whether r is one of the four defined rotations.
func (r Rotation) Valid() bool {
	return r >= Normal && r <= Right
}

// Swapped reports whether r exchanges a screen's width and height on the canvas.
func (r Rotation) Swapped() bool {
	return r == Left || r == Right
}

// Degrees returns the clockwise rotation angle.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// ParseRotation matches name case-insensitively against the rotation names.
func ParseRotation(name string) (Rotation, error) {
	for i, n := range rotationNames {
		if strings.EqualFold(name, n) {
			return Rotation(i), nil
		}
	}
	return Normal, errors.New(errors.ErrCodeUnknownRotation,
		"invalid rotation specification: %s (must be one of %s)", name, strings.Join(rotationNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rotation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, errors.New(errors.ErrCodeUnsupportedRotation, "unsupported rotation %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rotation) UnmarshalText(text []byte) error {
	rot, err := ParseRotation(string(text))
	if err != nil {
		return err
	}
	*r = rot
	return nil
}
