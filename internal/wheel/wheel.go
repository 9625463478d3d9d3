package wheel

import "fmt"

// Wheel lists the colors clockwise around the additive color wheel.
// Complement depends on this exact order: opposite colors sit three apart.
var Wheel = [6]Color{Yellow, Green, Blue, Purple, Red, Orange}

// Primaries and Secondaries are parallel tables for the mixing quiz.
// Mixing Primaries[i] and Primaries[j] (i != j) gives Secondaries[i+j-1].
var (
	Primaries   = [3]Color{Yellow, Blue, Red}
	Secondaries = [3]Color{Green, Orange, Purple}
)

// complementOffset is half the wheel.
const complementOffset = len(Wheel) / 2

// Complement returns the wheel index and color opposite the color at index.
func Complement(index int) (int, Color, error) {
	if index < 0 || index >= len(Wheel) {
		return 0, 0, fmt.Errorf("wheel: index %d out of range [0,%d)", index, len(Wheel))
	}
	opposite := (index + complementOffset) % len(Wheel)
	return opposite, Wheel[opposite], nil
}

// ComplementOf returns the color opposite c.
func ComplementOf(c Color) (Color, error) {
	idx, err := WheelIndex(c)
	if err != nil {
		return 0, err
	}
	_, opposite, err := Complement(idx)
	return opposite, err
}

// WheelIndex returns the clockwise position of c on the wheel.
func WheelIndex(c Color) (int, error) {
	for i, w := range Wheel {
		if w == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w %v", ErrUnknownColor, c)
}

// Mix returns the secondary color made by the primaries at indices i and j.
// The indices must differ and both lie in [0,3).
func Mix(i, j int) (Color, error) {
	if i < 0 || i >= len(Primaries) || j < 0 || j >= len(Primaries) {
		return 0, fmt.Errorf("wheel: primary indices (%d, %d) out of range [0,%d)", i, j, len(Primaries))
	}
	if i == j {
		return 0, fmt.Errorf("wheel: cannot mix %v with itself", Primaries[i])
	}
	return Secondaries[i+j-1], nil
}

// MixColors is Mix keyed by color instead of index.
func MixColors(a, b Color) (Color, error) {
	i, ok := primaryIndex(a)
	if !ok {
		return 0, fmt.Errorf("wheel: %v is not a primary color", a)
	}
	j, ok := primaryIndex(b)
	if !ok {
		return 0, fmt.Errorf("wheel: %v is not a primary color", b)
	}
	return Mix(i, j)
}

// IsPrimary reports whether c is one of the three primaries.
func IsPrimary(c Color) bool {
	_, ok := primaryIndex(c)
	return ok
}

func primaryIndex(c Color) (int, bool) {
	for i, p := range Primaries {
		if p == c {
			return i, true
		}
	}
	return 0, false
}
