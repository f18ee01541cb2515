package layout

import (
	"testing"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		screens   []screen.Spec
		target    int
		canvas    Canvas
		placement Placement
	}{
		{
			name:      "single normal",
			screens:   []screen.Spec{{Width: 1920, Height: 1080}},
			target:    0,
			canvas:    Canvas{1920, 1080},
			placement: Placement{0, 0, 1920, 1080},
		},
		{
			name:      "single left swaps canvas and size",
			screens:   []screen.Spec{{Width: 1920, Height: 1080, Rotation: screen.Left}},
			target:    0,
			canvas:    Canvas{1080, 1920},
			placement: Placement{0, 0, 1080, 1920},
		},
		{
			name:      "single inverted keeps size",
			screens:   []screen.Spec{{Width: 1920, Height: 1080, Rotation: screen.Inverted}},
			target:    0,
			canvas:    Canvas{1920, 1080},
			placement: Placement{0, 0, 1920, 1080},
		},
		{
			name: "two equal screens second target",
			screens: []screen.Spec{
				{Width: 1920, Height: 1080},
				{Width: 1920, Height: 1080},
			},
			target:    1,
			canvas:    Canvas{3840, 1080},
			placement: Placement{1920, 0, 1920, 1080},
		},
		{
			name: "height is max of screens",
			screens: []screen.Spec{
				{Width: 1280, Height: 800},
				{Width: 1920, Height: 1200},
				{Width: 1024, Height: 768},
			},
			target:    2,
			canvas:    Canvas{4224, 1200},
			placement: Placement{3200, 0, 1024, 768},
		},
		{
			name: "rotated target contributes height to width",
			screens: []screen.Spec{
				{Width: 1920, Height: 1080},
				{Width: 1920, Height: 1080, Rotation: screen.Right},
			},
			target:    1,
			canvas:    Canvas{3000, 1920},
			placement: Placement{1920, 0, 1080, 1920},
		},
		{
			// Origin uses the left screen's raw width (1920), not its
			// canvas width (1080). Kept for compatibility.
			name: "rotated neighbour uses raw width for origin",
			screens: []screen.Spec{
				{Width: 1920, Height: 1080, Rotation: screen.Left},
				{Width: 1920, Height: 1080},
			},
			target:    1,
			canvas:    Canvas{3000, 1920},
			placement: Placement{1920, 0, 1920, 1080},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, p, err := Resolve(tt.screens, tt.target)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if c != tt.canvas {
				t.Errorf("canvas = %+v, want %+v", c, tt.canvas)
			}
			if p != tt.placement {
				t.Errorf("placement = %+v, want %+v", p, tt.placement)
			}
			if p.OriginY != 0 {
				t.Errorf("OriginY = %d, want 0", p.OriginY)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	two := []screen.Spec{{Width: 800, Height: 600}, {Width: 800, Height: 600}}

	tests := []struct {
		name    string
		screens []screen.Spec
		target  int
		code    errors.Code
	}{
		{"empty", nil, 0, errors.ErrCodeEmptyLayout},
		{"index equals count", two, 2, errors.ErrCodeInvalidIndex},
		{"negative index", two, -1, errors.ErrCodeInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolve(tt.screens, tt.target)
			if !errors.Is(err, tt.code) {
				t.Errorf("Resolve() error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, _, err := Resolve(two, 1); err != nil {
		t.Errorf("Resolve(index = count-1) error = %v", err)
	}
}

func TestQuirk(t *testing.T) {
	screens := []screen.Spec{
		{Width: 1920, Height: 1080, Rotation: screen.Left},
		{Width: 1000, Height: 1000, Rotation: screen.Right},
		{Width: 1920, Height: 1080},
	}

	if affected, _ := Quirk(screens, 0); affected {
		t.Error("Quirk(target 0) affected = true, want false")
	}
	affected, delta := Quirk(screens, 2)
	if !affected {
		t.Error("Quirk(target 2) affected = false, want true")
	}
	if delta != 840 {
		t.Errorf("Quirk(target 2) delta = %d, want 840", delta)
	}
	if affected, _ := Quirk(screens[1:], 1); affected {
		t.Error("square rotated neighbour should not be affected")
	}
}
