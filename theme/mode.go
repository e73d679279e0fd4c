package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown theme mode")

// Mode is the two-valued theme indicator.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return Dark, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Toggle returns the other mode. Anything that is not Light toggles to Light.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m Mode) IsLight() bool { return m == Light }
