// Package config loads screen layouts from TOML files.
//
// A layout file describes the screens left to right, the touch screen index,
// and optionally the output format and the input device name:
//
//	touch_index = 1
//	format = "xinput"
//	device = "ELAN Touchscreen"
//
//	[[screen]]
//	resolution = "1920x1080"
//
//	[[screen]]
//	resolution = "1080x1920"
//	rotation = "left"
//
// A screen may give width and height instead of resolution. Screens go
// through the same validation as command-line screens.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// file is the on-disk layout format.
type file struct {
	TouchIndex *int          `toml:"touch_index"`
	Format     string        `toml:"format"`
	Device     string        `toml:"device"`
	Screens    []screenEntry `toml:"screen"`
}

type screenEntry struct {
	Resolution string `toml:"resolution"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Rotation   string `toml:"rotation"`
}

// Layout is a parsed layout file.
type Layout struct {
	Screens []screen.Spec

	// TouchIndex is valid only when HasTouchIndex is set.
	TouchIndex    int
	HasTouchIndex bool

	Format string
	Device string
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "layout file %s", path)
	}
	return l, nil
}

// Parse parses a layout from TOML data.
func Parse(data []byte) (*Layout, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	var list screen.List
	for i, e := range f.Screens {
		if err := addEntry(&list, e); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "screen %d", i)
		}
	}

	l := &Layout{
		Screens: list.Screens(),
		Format:  f.Format,
		Device:  f.Device,
	}
	if f.TouchIndex != nil {
		l.TouchIndex = *f.TouchIndex
		l.HasTouchIndex = true
	}
	return l, nil
}

func addEntry(list *screen.List, e screenEntry) error {
	switch {
	case e.Resolution != "" && (e.Width != 0 || e.Height != 0):
		return errors.New(errors.ErrCodeInvalidConfig, "give either resolution or width and height, not both")
	case e.Resolution != "":
		if err := list.AddResolution(e.Resolution); err != nil {
			return err
		}
	default:
		if e.Width <= 0 || e.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidResolution, "invalid resolution %dx%d", e.Width, e.Height)
		}
		if err := list.Add(screen.Spec{Width: e.Width, Height: e.Height}); err != nil {
			return err
		}
	}
	if e.Rotation != "" {
		return list.SetRotation(e.Rotation)
	}
	return nil
}
