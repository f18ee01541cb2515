package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/matrix"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// Format names.
const (
	FormatPlain  = "plain"
	FormatXInput = "xinput"
	FormatUdev   = "udev"
	FormatXorg   = "xorg"
	FormatJSON   = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPlain:  true,
	FormatXInput: true,
	FormatUdev:   true,
	FormatXorg:   true,
	FormatJSON:   true,
}

// FormatNames returns the supported formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// Data is everything a renderer may need about one computation.
type Data struct {
	Screens   []screen.Spec
	Target    int
	Canvas    layout.Canvas
	Placement layout.Placement
	Rotation  screen.Rotation
	Matrix    matrix.Matrix
}

// Option configures rendering via [Render].
type Option func(*renderer)

type renderer struct {
	device string
}

// WithDevice names the input device for formats that target one device.
func WithDevice(name string) Option { return func(r *renderer) { r.device = name } }

// Render renders d in the given format.
func Render(format string, d Data, opts ...Option) ([]byte, error) {
	r := &renderer{}
	for _, opt := range opts {
		opt(r)
	}

	switch format {
	case FormatPlain:
		return RenderPlain(d.Matrix), nil
	case FormatXInput:
		return r.xinput(d.Matrix)
	case FormatUdev:
		return r.udev(d.Matrix)
	case FormatXorg:
		return r.xorg(d.Matrix)
	case FormatJSON:
		return RenderJSON(d)
	}
	return nil, ValidateFormat(format)
}

// RenderPlain renders m as nine space-separated values and a newline.
func RenderPlain(m matrix.Matrix) []byte {
	return []byte(m.String() + "\n")
}

func (r *renderer) xinput(m matrix.Matrix) ([]byte, error) {
	if r.device == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "xinput format requires a device name")
	}
	line := fmt.Sprintf("xinput set-prop %s --type=float 'Coordinate Transformation Matrix' %s\n",
		shellQuote(r.device), m)
	return []byte(line), nil
}

func (r *renderer) udev(m matrix.Matrix) ([]byte, error) {
	if strings.ContainsAny(r.device, "\"\n") {
		return nil, errors.New(errors.ErrCodeInvalidInput, "device name %q cannot be used in a udev rule", r.device)
	}
	v := m.Values()

	var b strings.Builder
	b.WriteString(`ACTION=="add|change", KERNEL=="event[0-9]*", ENV{ID_INPUT_TOUCHSCREEN}=="1", `)
	if r.device != "" {
		fmt.Fprintf(&b, `ATTRS{name}=="%s", `, r.device)
	}
	fmt.Fprintf(&b, "ENV{LIBINPUT_CALIBRATION_MATRIX}=\"%s\"\n", matrix.Join(v[:6]))
	return []byte(b.String()), nil
}

func (r *renderer) xorg(m matrix.Matrix) ([]byte, error) {
	if strings.ContainsAny(r.device, "\"\n") {
		return nil, errors.New(errors.ErrCodeInvalidInput, "device name %q cannot be used in xorg.conf", r.device)
	}

	var b strings.Builder
	b.WriteString("Section \"InputClass\"\n")
	b.WriteString("\tIdentifier \"touchmatrix touchscreen\"\n")
	b.WriteString("\tMatchIsTouchscreen \"on\"\n")
	if r.device != "" {
		fmt.Fprintf(&b, "\tMatchProduct \"%s\"\n", r.device)
	}
	fmt.Fprintf(&b, "\tOption \"TransformationMatrix\" \"%s\"\n", m)
	b.WriteString("EndSection\n")
	return []byte(b.String()), nil
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// =============================================================================
// JSON
// =============================================================================

type jsonOutput struct {
	Screens   []screen.Spec    `json:"screens,omitempty"`
	Target    int              `json:"touch_index"`
	Canvas    layout.Canvas    `json:"canvas"`
	Placement layout.Placement `json:"placement"`
	Rotation  screen.Rotation  `json:"rotation"`
	Matrix    [3][3]float64    `json:"matrix"`
}

// RenderJSON renders d as an indented JSON document.
func RenderJSON(d Data) ([]byte, error) {
	out := jsonOutput{
		Screens:   d.Screens,
		Target:    d.Target,
		Canvas:    d.Canvas,
		Placement: d.Placement,
		Rotation:  d.Rotation,
		Matrix:    d.Matrix,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return buf.Bytes(), nil
}
