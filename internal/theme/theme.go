package theme

import "errors"

var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the persisted color scheme preference.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when no preference was stored.
const Default = Dark

func Parse(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Dark, Light:
		return t, nil
	}
	return "", ErrInvalidTheme
}

// Toggle returns the other theme. Anything that is not dark becomes dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool { return t == Dark }
