package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/matrix"
	"github.com/matzehuels/touchmatrix/pkg/observability"
	"github.com/matzehuels/touchmatrix/pkg/output"
)

// Runner executes the pipeline.
//
// The Runner holds only a logger; it doesn't store results. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete layout → matrix → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result, err := r.Compute(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifact, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.Format = opts.Format
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Compute runs the layout and matrix stages without rendering.
func (r *Runner) Compute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}

	target := opts.Screens[opts.TouchIndex]
	result := &Result{
		Screens:    opts.Screens,
		TouchIndex: opts.TouchIndex,
		Rotation:   target.Rotation,
	}

	// Stage 1: Layout
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(opts.Screens), opts.TouchIndex)
	layoutStart := time.Now()
	canvas, placement, err := layout.Resolve(opts.Screens, opts.TouchIndex)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, canvas.Width, canvas.Height, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Canvas = canvas
	result.Placement = placement

	opts.Logger.Debug("resolved layout",
		"screens", len(opts.Screens),
		"canvas", fmt.Sprintf("%dx%d", canvas.Width, canvas.Height),
		"index", opts.TouchIndex,
		"origin", fmt.Sprintf("%dx%d", placement.OriginX, placement.OriginY),
		"size", fmt.Sprintf("%dx%d", placement.Width, placement.Height))
	if affected, delta := layout.Quirk(opts.Screens, opts.TouchIndex); affected {
		opts.Logger.Debug("rotated screen left of touchscreen; origin uses its unrotated width",
			"offset", delta)
	}

	// Stage 2: Matrix
	hooks.OnMatrixStart(ctx, target.Rotation.String())
	matrixStart := time.Now()
	m, err := matrix.Build(canvas, placement, target.Rotation)
	result.Stats.MatrixTime = time.Since(matrixStart)
	hooks.OnMatrixComplete(ctx, target.Rotation.String(), result.Stats.MatrixTime, err)
	if err != nil {
		return nil, err
	}
	result.Matrix = m

	opts.Logger.Debug("built matrix", "rotation", target.Rotation, "matrix", m.String())

	return result, nil
}

// Render formats a computed result.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) ([]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	data, err := output.Render(opts.Format, result.Data(), opts.RenderOptions()...)
	observability.Output().OnWrite(ctx, opts.Format, len(data), err)
	return data, err
}

// applyLogger fills in the runner's logger when opts carries none.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
