package construct

import "fmt"

// GridStep is the base offset used when the entry path builds its point.
// Nothing in the program mutates or overrides it.
const GridStep = 10

// Point is a plain two-field integer aggregate. It carries no invariants
// beyond field presence.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Coordinate is a transparent alias for Point. The two names are
// interchangeable everywhere; the alias exists for call sites that read
// better in coordinate terms.
type Coordinate = Point

// New creates a Point with the given field values.
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
