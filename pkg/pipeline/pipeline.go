// Package pipeline provides the core touchmatrix pipeline.
//
// This package composes the layout → matrix → render stages so the CLI
// commands share one code path and produce identical results.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: place the screens on the canvas and find the touch screen's rectangle
//  2. Matrix: build the rotation-aware transformation matrix for that rectangle
//  3. Render: format the matrix for the requested consumer (plain, xinput, udev, ...)
//
// Data flows one way; there is no shared mutable state.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Screens:    screens,
//	    TouchIndex: 1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Artifact)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/matrix"
	"github.com/matzehuels/touchmatrix/pkg/output"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultFormat is the default output format.
const DefaultFormat = output.FormatPlain

// DefaultTouchIndex is the screen the touch panel is on when none is given.
const DefaultTouchIndex = 0

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Layout options
	Screens    []screen.Spec `json:"screens"`
	TouchIndex int           `json:"touch_index"`

	// Render options
	Format string `json:"format,omitempty"`
	Device string `json:"device,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Screens    []screen.Spec
	TouchIndex int

	// Canvas is the bounding box of all screens.
	Canvas layout.Canvas

	// Placement is the touch screen's rectangle on the canvas.
	Placement layout.Placement

	// Rotation is the touch screen's rotation.
	Rotation screen.Rotation

	// Matrix is the coordinate transformation matrix.
	Matrix matrix.Matrix

	// Artifact is the rendered output in Format.
	Artifact []byte
	Format   string

	// Stats contains timing information.
	Stats Stats
}

// Data returns the result in the form consumed by output renderers.
func (r *Result) Data() output.Data {
	return output.Data{
		Screens:   r.Screens,
		Target:    r.TouchIndex,
		Canvas:    r.Canvas,
		Placement: r.Placement,
		Rotation:  r.Rotation,
		Matrix:    r.Matrix,
	}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayoutTime time.Duration
	MatrixTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLayout checks the screens and the touch index.
func (o *Options) ValidateForLayout() error {
	if err := screen.Validate(o.Screens); err != nil {
		return err
	}
	if o.TouchIndex < 0 || o.TouchIndex >= len(o.Screens) {
		return errors.New(errors.ErrCodeInvalidIndex,
			"touchscreen index %d out of range (have %d screens)", o.TouchIndex, len(o.Screens))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return output.ValidateFormat(o.Format)
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// RenderOptions returns the output options derived from o.
func (o *Options) RenderOptions() []output.Option {
	var opts []output.Option
	if o.Device != "" {
		opts = append(opts, output.WithDevice(o.Device))
	}
	return opts
}
