package screen

import (
	"github.com/matzehuels/touchmatrix/pkg/errors"
)

// List accumulates screens in declaration order.
// The zero value is an empty list ready to use.
type List struct {
	screens []Spec
}

// AddResolution parses token as "WxH" and appends a new unrotated screen.
func (l *List) AddResolution(token string) error {
	if len(l.screens) >= MaxScreens {
		return errors.New(errors.ErrCodeTooManyScreens, "too many screens (max %d)", MaxScreens)
	}
	s, err := ParseResolution(token)
	if err != nil {
		return err
	}
	l.screens = append(l.screens, s)
	return nil
}

// Add appends an already parsed screen.
func (l *List) Add(s Spec) error {
	if len(l.screens) >= MaxScreens {
		return errors.New(errors.ErrCodeTooManyScreens, "too many screens (max %d)", MaxScreens)
	}
	l.screens = append(l.screens, s)
	return nil
}

// SetRotation sets the rotation of the most recently added screen.
func (l *List) SetRotation(name string) error {
	if len(l.screens) == 0 {
		return errors.New(errors.ErrCodeRotationBeforeResolution, "rotation cannot appear before resolution")
	}
	rot, err := ParseRotation(name)
	if err != nil {
		return err
	}
	l.screens[len(l.screens)-1].Rotation = rot
	return nil
}

// Len returns the number of screens.
func (l *List) Len() int { return len(l.screens) }

// Screens returns a copy of the screens in declaration order.
func (l *List) Screens() []Spec {
	out := make([]Spec, len(l.screens))
	copy(out, l.screens)
	return out
}
