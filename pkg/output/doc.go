// Package output renders a computed transformation matrix in the forms
// consumed by input stacks.
//
// # Formats
//
//   - [FormatPlain]: nine space-separated values with five fractional digits,
//     row-major, followed by a newline. This is the default.
//   - [FormatXInput]: an xinput command that sets the "Coordinate
//     Transformation Matrix" property of a named device.
//   - [FormatUdev]: a udev rule setting LIBINPUT_CALIBRATION_MATRIX, which
//     takes the top two rows of the matrix.
//   - [FormatXorg]: an xorg.conf InputClass section with a
//     TransformationMatrix option.
//   - [FormatJSON]: the canvas, placement and matrix as a JSON document.
//
// Every format is deterministic: identical input always produces identical
// bytes.
package output
