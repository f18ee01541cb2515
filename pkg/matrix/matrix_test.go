package matrix

import (
	"testing"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

func build(t *testing.T, screens []screen.Spec, target int) Matrix {
	t.Helper()
	c, p, err := layout.Resolve(screens, target)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	m, err := Build(c, p, screens[target].Rotation)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func TestBuildSingleScreen(t *testing.T) {
	tests := []struct {
		rot  screen.Rotation
		want [9]float64
	}{
		{screen.Normal, [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{screen.Left, [9]float64{0, -1, 1, 1, 0, 0, 0, 0, 1}},
		{screen.Inverted, [9]float64{-1, 0, 1, 0, -1, 1, 0, 0, 1}},
		{screen.Right, [9]float64{0, 1, 0, -1, 0, 1, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.rot.String(), func(t *testing.T) {
			m := build(t, []screen.Spec{{Width: 1920, Height: 1080, Rotation: tt.rot}}, 0)
			if got := m.Values(); got != tt.want {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildTwoScreens(t *testing.T) {
	screens := []screen.Spec{
		{Width: 1280, Height: 1024},
		{Width: 1280, Height: 1024},
	}

	left := build(t, screens, 0)
	if got, want := left.Values(), [9]float64{0.5, 0, 0, 0, 1, 0, 0, 0, 1}; got != want {
		t.Errorf("index 0: Values() = %v, want %v", got, want)
	}

	right := build(t, screens, 1)
	if got, want := right.Values(), [9]float64{0.5, 0, 0.5, 0, 1, 0, 0, 0, 1}; got != want {
		t.Errorf("index 1: Values() = %v, want %v", got, want)
	}
}

func TestBuildProperties(t *testing.T) {
	layouts := [][]screen.Spec{
		{{Width: 1920, Height: 1080}},
		{{Width: 1920, Height: 1080}, {Width: 1080, Height: 1920, Rotation: screen.Left}},
		{{Width: 1280, Height: 800, Rotation: screen.Inverted}, {Width: 1024, Height: 768, Rotation: screen.Right}, {Width: 800, Height: 480}},
		{{Width: 640, Height: 480, Rotation: screen.Right}, {Width: 640, Height: 480, Rotation: screen.Left}, {Width: 640, Height: 480, Rotation: screen.Inverted}, {Width: 640, Height: 480}},
	}

	for _, screens := range layouts {
		for target := range screens {
			m := build(t, screens, target)
			rot := screens[target].Rotation

			if !m.Affine() {
				t.Errorf("%v target %d: bottom row = %v, want [0 0 1]", screens, target, m[2])
			}
			if rot.Swapped() {
				if m[0][0] != 0 || m[1][1] != 0 {
					t.Errorf("%v target %d: diagonal not zero: %v", screens, target, m)
				}
			} else if m[0][1] != 0 || m[1][0] != 0 {
				t.Errorf("%v target %d: off-diagonal not zero: %v", screens, target, m)
			}

			again := build(t, screens, target)
			if again != m {
				t.Errorf("%v target %d: not deterministic", screens, target)
			}
		}
	}
}

// A rotated screen left of the target shifts the origin by its raw width,
// not by its canvas width. This keeps compatibility with existing setups.
func TestBuildRotatedNeighbourUsesRawWidth(t *testing.T) {
	screens := []screen.Spec{
		{Width: 1500, Height: 1000, Rotation: screen.Left},
		{Width: 1500, Height: 1000},
	}
	m := build(t, screens, 1)

	// canvas is 1000+1500 wide; origin is 1500, not 1000
	if got, want := m[0][2], 1500.0/2500.0; got != want {
		t.Errorf("m[0][2] = %v, want %v", got, want)
	}
	if got, want := m[0][0], 1500.0/2500.0; got != want {
		t.Errorf("m[0][0] = %v, want %v", got, want)
	}
	if got, want := m[1][1], 1000.0/1500.0; got != want {
		t.Errorf("m[1][1] = %v, want %v", got, want)
	}
}

func TestBuildErrors(t *testing.T) {
	p := layout.Placement{Width: 10, Height: 10}

	if _, err := Build(layout.Canvas{Width: 10, Height: 10}, p, screen.Rotation(4)); !errors.Is(err, errors.ErrCodeUnsupportedRotation) {
		t.Errorf("Build(rotation 4) error = %v, want UNSUPPORTED_ROTATION", err)
	}
	if _, err := Build(layout.Canvas{Width: 0, Height: 10}, p, screen.Normal); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build(zero canvas) error = %v, want INVALID_INPUT", err)
	}
}

func TestApplyCorners(t *testing.T) {
	screens := []screen.Spec{
		{Width: 1000, Height: 500},
		{Width: 1000, Height: 500, Rotation: screen.Left},
	}
	m := build(t, screens, 1)

	// canvas 1500x1000; target occupies x in [1000/1500, 1], y in [0, 1000/1000]
	tests := []struct {
		inX, inY   float64
		outX, outY float64
	}{
		{0, 0, 1, 0},
		{1, 0, 1, 1},
		{0, 1, 1000.0 / 1500.0, 0},
	}
	for _, tt := range tests {
		x, y := m.Apply(tt.inX, tt.inY)
		if !near(x, tt.outX) || !near(y, tt.outY) {
			t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.inX, tt.inY, x, y, tt.outX, tt.outY)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := Identity().String(), "1.00000 0.00000 0.00000 0.00000 1.00000 0.00000 0.00000 0.00000 1.00000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	m := build(t, []screen.Spec{{Width: 1000, Height: 1000}, {Width: 1000, Height: 1000}, {Width: 1000, Height: 1000}}, 1)
	if got, want := m.String(), "0.33333 0.00000 0.33333 0.00000 1.00000 0.00000 0.00000 0.00000 1.00000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringMatchesValues(t *testing.T) {
	m := build(t, []screen.Spec{{Width: 1080, Height: 1920, Rotation: screen.Left}, {Width: 1920, Height: 1080}}, 1)
	v := m.Values()
	if got, want := m.String(), Join(v[:]); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := m.String(), "0.50000 0.00000 0.28125 0.00000 1.00000 0.00000 0.00000 0.00000 1.00000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
