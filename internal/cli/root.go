package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/touchmatrix/pkg/buildinfo"
	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/observability"
	"github.com/matzehuels/touchmatrix/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "touchmatrix"

	// layoutFileName is the layout file looked up in the config directory.
	layoutFileName = "layout.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags *layoutFlags
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		flags:  newLayoutFlags(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "touchmatrix [-i index] { -r WxH [-R rotation] ... }",
		Short: "Compute a touchscreen coordinate transformation matrix",
		Long: `touchmatrix computes the coordinate transformation matrix that maps a
touchscreen onto its screen in a multi-screen setup.

Screens are placed left to right in the order of the -r flags. A -R flag
sets the rotation of the screen declared just before it. The -i flag picks
the (zero-based) screen the touchscreen is attached to.

Without -r and --config, screens are read from
$XDG_CONFIG_HOME/touchmatrix/layout.toml (~/.config/touchmatrix/layout.toml)
when that file exists. With no screens at all, this help is shown.

The matrix is printed as nine values, row by row, ready for the
"Coordinate Transformation Matrix" input device property.`,
		Example: `  touchmatrix -r 1920x1080 -r 1920x1080 -i 1
  touchmatrix -r 1920x1080 -r 800x1280 -R left -i 1 -f xinput -d "ELAN Touchscreen"
  touchmatrix -c layout.toml -f udev`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := newLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetOutputHooks(hooks)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(c.flags.flagError)
	c.flags.register(root.PersistentFlags())

	root.AddCommand(c.explainCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runCompute prints the matrix for the configured layout.
func (c *CLI) runCompute(cmd *cobra.Command) error {
	opts, err := c.flags.options(cmd)
	if errors.Is(err, errors.ErrCodeEmptyLayout) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	prog := newProgress(opts.Logger)
	result, err := pipeline.NewRunner(opts.Logger).Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done("computed matrix")

	_, err = cmd.OutOrStdout().Write(result.Artifact)
	return err
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/touchmatrix/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultLayoutFile returns the path of the default layout file,
// or "" if there is none.
func defaultLayoutFile() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, layoutFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
