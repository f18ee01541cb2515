package matrix

import (
	"strconv"
	"strings"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// Precision is the number of fractional digits used when formatting entries.
const Precision = 5

// Matrix is a 3×3 affine transform in homogeneous coordinates, row-major.
// The bottom row is always [0 0 1].
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Build returns the transform that maps normalized touch input onto the
// placement p within canvas c, for a screen rotated by r.
func Build(c layout.Canvas, p layout.Placement, r screen.Rotation) (Matrix, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return Matrix{}, errors.New(errors.ErrCodeInvalidInput, "invalid canvas %dx%d", c.Width, c.Height)
	}

	cw, ch := float64(c.Width), float64(c.Height)
	x := float64(p.OriginX) / cw
	y := float64(p.OriginY) / ch
	w := float64(p.Width) / cw
	h := float64(p.Height) / ch

	m := Identity()
	switch r {
	case screen.Normal:
		m.set(x, y, w, h, true)
	case screen.Left:
		m.set(x+w, y, -w, h, false)
	case screen.Inverted:
		m.set(x+w, y+h, -w, -h, true)
	case screen.Right:
		m.set(x, y+h, w, -h, false)
	default:
		return Matrix{}, errors.New(errors.ErrCodeUnsupportedRotation, "unsupported rotation %d", int(r))
	}
	return m, nil
}

// set fills the top two rows. d1 and d2 go on the main diagonal when diag
// is true, otherwise on the anti-diagonal as m[0][1] and m[1][0].
func (m *Matrix) set(tx, ty, d1, d2 float64, diag bool) {
	m[0][2] = tx
	m[1][2] = ty
	if diag {
		m[0][0], m[0][1] = d1, 0
		m[1][0], m[1][1] = 0, d2
		return
	}
	m[0][0], m[0][1] = 0, d1
	m[1][0], m[1][1] = d2, 0
}

// Values returns the nine entries in row-major order.
func (m Matrix) Values() [9]float64 {
	var v [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			v[row*3+col] = m[row][col]
		}
	}
	return v
}

// Apply maps the normalized point (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2],
		m[1][0]*x + m[1][1]*y + m[1][2]
}

// Affine reports whether the bottom row is [0 0 1].
func (m Matrix) Affine() bool {
	return m[2][0] == 0 && m[2][1] == 0 && m[2][2] == 1
}

// String returns the nine entries separated by spaces, each with
// Precision fractional digits.
func (m Matrix) String() string {
	v := m.Values()
	return Join(v[:])
}

// Join formats values with Precision fractional digits, separated by spaces.
func Join(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v)
	}
	return strings.Join(parts, " ")
}

// FormatValue formats a single entry with Precision fractional digits.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}
