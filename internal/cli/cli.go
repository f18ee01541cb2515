// Package cli implements the touchmatrix command-line interface.
//
// The root command computes a touchscreen coordinate transformation matrix
// from a list of screens given on the command line or in a layout file. The
// CLI is built using cobra and logs via the charmbracelet/log library.
//
// # Screens
//
// Screens are declared left to right with repeated -r/--resolution flags. A
// -R/--rotation flag applies to the most recently declared screen:
//
//	touchmatrix -r 1920x1080 -r 1080x1920 -R left -i 1
//
// # Commands
//
//   - (root): print the matrix in the selected format
//   - explain: show the canvas, the touch screen's placement, and the matrix
//   - pick: choose the touch screen interactively
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Standard output carries only the requested artifact.
package cli
