package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/touchmatrix/pkg/config"
	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/output"
	"github.com/matzehuels/touchmatrix/pkg/pipeline"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// layoutFlags holds the screen layout flags shared by all computing commands.
//
// Resolution and rotation flags are positional: pflag calls Set in command
// line order, so both values write into the same screen.List and a rotation
// lands on the screen declared just before it.
type layoutFlags struct {
	screens screen.List
	index   indexValue
	format  string
	device  string
	config  string

	// err is the first structured error raised by a flag value.
	// pflag flattens it into text, so the flag error func returns it instead.
	err error
}

func (f *layoutFlags) register(fs *pflag.FlagSet) {
	fs.VarP(&resolutionValue{f}, "resolution", "r", "screen resolution `WxH`, repeat once per screen from left to right")
	fs.VarP(&rotationValue{f}, "rotation", "R", "rotation of the preceding screen: "+strings.Join(screen.RotationNames(), ", "))
	fs.VarP(&f.index, "index", "i", "zero-based index of the screen the touchscreen is attached to")
	fs.StringVarP(&f.format, "format", "f", pipeline.DefaultFormat, "output format: "+strings.Join(output.FormatNames(), ", "))
	fs.StringVarP(&f.device, "device", "d", "", "input device name (xinput, udev, xorg formats)")
	fs.StringVarP(&f.config, "config", "c", "", "read screens from a TOML layout file")
}

// record keeps the first error raised by a flag value and returns err.
func (f *layoutFlags) record(err error) error {
	if err != nil && f.err == nil {
		f.err = err
	}
	return err
}

// flagError returns the structured flag error if one was recorded.
func (f *layoutFlags) flagError(_ *cobra.Command, err error) error {
	if f.err != nil {
		return f.err
	}
	return err
}

// options builds pipeline options from the flags, reading the layout file
// when one is given. An empty layout yields an EMPTY_LAYOUT error.
func (f *layoutFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{
		TouchIndex: f.index.value,
		Format:     f.format,
		Device:     f.device,
		Logger:     loggerFromContext(cmd.Context()),
	}

	path := f.config
	if path == "" && f.screens.Len() == 0 {
		path = defaultLayoutFile()
	}
	if path == "" {
		opts.Screens = f.screens.Screens()
		if len(opts.Screens) == 0 {
			return opts, errors.New(errors.ErrCodeEmptyLayout, "no screens given")
		}
		return opts, nil
	}

	if f.screens.Len() > 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "--config cannot be combined with --resolution")
	}
	l, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	opts.Logger.Debug("loaded layout file", "path", path, "screens", len(l.Screens))

	opts.Screens = l.Screens
	if !f.index.set && l.HasTouchIndex {
		opts.TouchIndex = l.TouchIndex
	}
	if !cmd.Flags().Changed("format") && l.Format != "" {
		opts.Format = l.Format
	}
	if !cmd.Flags().Changed("device") && l.Device != "" {
		opts.Device = l.Device
	}
	if len(opts.Screens) == 0 {
		return opts, errors.New(errors.ErrCodeEmptyLayout, "no screens in %s", path)
	}
	return opts, nil
}

// =============================================================================
// Flag Values
// =============================================================================

// resolutionValue appends a screen for every -r flag.
type resolutionValue struct{ f *layoutFlags }

func (v *resolutionValue) String() string {
	parts := make([]string, 0, v.f.screens.Len())
	for _, s := range v.f.screens.Screens() {
		parts = append(parts, strconv.Itoa(s.Width)+"x"+strconv.Itoa(s.Height))
	}
	return strings.Join(parts, ",")
}

func (v *resolutionValue) Set(s string) error { return v.f.record(v.f.screens.AddResolution(s)) }
func (v *resolutionValue) Type() string       { return "WxH" }

// rotationValue rotates the most recently declared screen.
type rotationValue struct{ f *layoutFlags }

func (v *rotationValue) String() string     { return "" }
func (v *rotationValue) Set(s string) error { return v.f.record(v.f.screens.SetRotation(s)) }
func (v *rotationValue) Type() string       { return "rotation" }

// indexValue is an int flag that may be given only once.
type indexValue struct {
	value int
	set   bool
	f     *layoutFlags
}

func (v *indexValue) String() string { return strconv.Itoa(v.value) }
func (v *indexValue) Type() string   { return "int" }

func (v *indexValue) Set(s string) error {
	if v.set {
		return v.record(errors.New(errors.ErrCodeInvalidIndex, "duplicate -i option"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return v.record(errors.New(errors.ErrCodeInvalidIndex, "invalid touchscreen index: %s", s))
	}
	v.value, v.set = n, true
	return nil
}

func (v *indexValue) record(err error) error {
	if v.f != nil {
		return v.f.record(err)
	}
	return err
}

func newLayoutFlags() *layoutFlags {
	f := &layoutFlags{}
	f.index.f = f
	return f
}
