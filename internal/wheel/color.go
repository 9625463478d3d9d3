// Package wheel holds the additive color wheel tables the quiz is built on.
// It has no dependencies so the lookups stay pure and testable.
package wheel

import (
	"errors"
	"fmt"
	"strings"
)

// Color is one of the six colors printed on the quiz cards.
type Color uint8

// Card colors. The numeric values are identifiers only; wheel order lives in Wheel.
const (
	Yellow Color = iota
	Green
	Blue
	Purple
	Red
	Orange
)

// ErrUnknownColor is returned when a name does not match any card color.
var ErrUnknownColor = errors.New("wheel: unknown color")

var colorNames = map[Color]string{
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Purple: "purple",
	Red:    "red",
	Orange: "orange",
}

// String returns the lowercase color name the robot speaks.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Valid reports whether c is one of the card colors.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// ParseColor converts a color name to a Color. Matching ignores case and
// surrounding whitespace.
func ParseColor(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, name)
}

// All returns every card color in wheel order.
func All() []Color {
	out := make([]Color, len(Wheel))
	copy(out, Wheel[:])
	return out
}
