package cli

import (
	"strings"
	"testing"
)

func TestExplain(t *testing.T) {
	out, err := execute(t, "explain", "-r", "1920x1080", "-r", "1920x1080", "-i", "1")
	if err != nil {
		t.Fatalf("explain error = %v", err)
	}

	for _, want := range []string{
		"Screens (2)",
		"3840x1080",
		"1920,0",
		"0.50000",
		"top-left",
		"bottom-right",
		"3840,1080",
		"touch",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("explain output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unrotated width") {
		t.Errorf("unexpected origin warning:\n%s", out)
	}
}

func TestExplainRotatedNeighbour(t *testing.T) {
	out, err := execute(t, "explain", "-r", "1080x1920", "-R", "left", "-r", "1920x1080", "-i", "1")
	if err != nil {
		t.Fatalf("explain error = %v", err)
	}

	// canvas is 1920+1920 wide, origin counts the rotated screen as 1080
	for _, want := range []string{"3840x1080", "1080,0", "normal (0°)", "unrotated width", "-840"} {
		if !strings.Contains(out, want) {
			t.Errorf("explain output missing %q:\n%s", want, out)
		}
	}
}

func TestExplainNoScreens(t *testing.T) {
	out, err := execute(t, "explain")
	if err != nil {
		t.Fatalf("explain error = %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage, got %q", out)
	}
}

func TestExplainErrors(t *testing.T) {
	if _, err := execute(t, "explain", "-r", "1x1", "-i", "1"); err == nil {
		t.Error("expected index error")
	}
}

func TestMatrixTable(t *testing.T) {
	out := matrixTable([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	if strings.Count(out, "1.00000") != 3 {
		t.Errorf("matrixTable() should render 3 ones:\n%s", out)
	}
	if strings.Count(out, "0.00000") != 6 {
		t.Errorf("matrixTable() should render 6 zeros:\n%s", out)
	}
}
