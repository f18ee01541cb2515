// Package screen models the physical screens of a multi-monitor setup.
//
// # Overview
//
// A setup is described as an ordered list of [Spec] values, one per physical
// screen, in left-to-right placement order: index 0 is the leftmost screen.
// Each screen has a resolution (width × height in pixels) and a [Rotation].
//
// # Building a List
//
// The command-line grammar is positional: a resolution declares a new screen
// and a rotation modifies the most recently declared one. [List] mirrors that
// grammar and enforces the [MaxScreens] policy:
//
//	var l screen.List
//	l.AddResolution("1920x1080")
//	l.AddResolution("1080x1920")
//	l.SetRotation("left")      // applies to the second screen
//	screens := l.Screens()
//
// # Rotations
//
// Only the four plain rotations are modeled. Reflections are not supported.
// Names are matched case-insensitively with [ParseRotation].
package screen
