package construct

import "fmt"

// Color is a three-valued enumeration. Ordinals are part of the contract
// and must not be reordered.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// colorNames maps ordinals to canonical lowercase names.
var colorNames = [...]string{"red", "green", "blue"}

// String returns the canonical name, or "Color(n)" for out-of-range values.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the declared enumerators.
func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

// ParseColor resolves a canonical name back to its Color.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q: must be one of %v", name, colorNames)
}
