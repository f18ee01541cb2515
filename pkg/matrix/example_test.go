package matrix_test

import (
	"fmt"

	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/matrix"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

func ExampleBuild() {
	// Two 1920x1080 screens side by side; the touch panel is on the right one.
	screens := []screen.Spec{
		{Width: 1920, Height: 1080},
		{Width: 1920, Height: 1080},
	}

	canvas, placement, err := layout.Resolve(screens, 1)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	m, err := matrix.Build(canvas, placement, screens[1].Rotation)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(m)
	// Output:
	// 0.50000 0.00000 0.50000 0.00000 1.00000 0.00000 0.00000 0.00000 1.00000
}

func ExampleBuild_rotated() {
	screens := []screen.Spec{{Width: 800, Height: 480, Rotation: screen.Left}}

	canvas, placement, _ := layout.Resolve(screens, 0)
	m, _ := matrix.Build(canvas, placement, screens[0].Rotation)

	fmt.Printf("canvas %dx%d\n", canvas.Width, canvas.Height)
	fmt.Println(m)
	// Output:
	// canvas 480x800
	// 0.00000 -1.00000 1.00000 1.00000 0.00000 0.00000 0.00000 0.00000 1.00000
}
