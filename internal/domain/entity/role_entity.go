package entity

import (
	"errors"
	"fmt"
)

// Role is one of the two mutually exclusive user types selected once during
// onboarding: callers sign up as "male", listeners as "female".
type Role string

const (
	RoleMale   Role = "male"
	RoleFemale Role = "female"
)

// ErrUnknownRole is returned for any role outside the closed set. The flow
// must fail loudly here; there is no silent fall-through.
var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMale:
		return RoleMale, nil
	case RoleFemale:
		return RoleFemale, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// HomeScreen returns the role-specific landing screen.
func (r Role) HomeScreen() (Screen, error) {
	switch r {
	case RoleMale:
		return ScreenMaleHome, nil
	case RoleFemale:
		return ScreenFemaleHome, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
}
