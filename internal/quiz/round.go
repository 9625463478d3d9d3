// Package quiz picks quiz questions from the color wheel tables and plays a
// round against a robot: speak the question, then look for the answer.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/colorbot/internal/wheel"
)

// Mode is a quiz game mode.
type Mode string

const (
	// ModeComplement asks for the color opposite one color on the wheel.
	ModeComplement Mode = "complement"
	// ModeMix asks which secondary color two primaries make.
	ModeMix Mode = "mix"
	// ModeRandom rolls ModeComplement or ModeMix for each round.
	ModeRandom Mode = "random"
)

// Prompts holds the fmt templates the robot speaks. Each %s receives a color name.
type Prompts struct {
	Complement string `yaml:"complement"` // one %s: the color shown
	Mix        string `yaml:"mix"`        // two %s: the primaries shown
	Celebrate  string `yaml:"celebrate"`  // one %s: the answer; empty skips it
	GiveUp     string `yaml:"give_up"`    // one %s: the answer; empty skips it
}

// DefaultPrompts returns the stock English prompts.
func DefaultPrompts() Prompts {
	return Prompts{
		Complement: "What color is opposite of %s",
		Mix:        "What color is made by %s and %s",
		Celebrate:  "%s is correct! Great job!",
		GiveUp:     "The answer was %s. Let's try another one!",
	}
}

// withDefaults fills empty question templates from DefaultPrompts.
// Celebrate and GiveUp stay empty when unset so they can be switched off.
func (p Prompts) withDefaults() Prompts {
	d := DefaultPrompts()
	if p.Complement == "" {
		p.Complement = d.Complement
	}
	if p.Mix == "" {
		p.Mix = d.Mix
	}
	return p
}

// Round is one quiz question.
type Round struct {
	Mode   Mode
	Shown  []wheel.Color // Colors named in the prompt
	Target wheel.Color   // Color the robot searches for
	Prompt string
}

// PickMode rolls a game mode: 1 plays mix, 0 plays complement.
func PickMode(rng *rand.Rand) Mode {
	if rng.Intn(2) == 1 {
		return ModeMix
	}
	return ModeComplement
}

// NewComplementRound picks a random wheel color and asks for its complement.
func NewComplementRound(rng *rand.Rand, p Prompts) Round {
	p = p.withDefaults()

	index := rng.Intn(len(wheel.Wheel))
	// index is always in range, so Complement cannot fail
	_, target, _ := wheel.Complement(index)
	shown := wheel.Wheel[index]

	return Round{
		Mode:   ModeComplement,
		Shown:  []wheel.Color{shown},
		Target: target,
		Prompt: fmt.Sprintf(p.Complement, shown),
	}
}

// NewMixRound picks two different primaries and asks which color they make.
func NewMixRound(rng *rand.Rand, p Prompts) Round {
	p = p.withDefaults()

	first := rng.Intn(len(wheel.Primaries))
	second := rng.Intn(len(wheel.Primaries))
	for second == first {
		second = rng.Intn(len(wheel.Primaries))
	}
	// first != second and both in range, so Mix cannot fail
	target, _ := wheel.Mix(first, second)
	a, b := wheel.Primaries[first], wheel.Primaries[second]

	return Round{
		Mode:   ModeMix,
		Shown:  []wheel.Color{a, b},
		Target: target,
		Prompt: fmt.Sprintf(p.Mix, a, b),
	}
}

// NewRound builds a round for mode. ModeRandom rolls the mode first.
func NewRound(mode Mode, rng *rand.Rand, p Prompts) (Round, error) {
	if mode == ModeRandom || mode == "" {
		mode = PickMode(rng)
	}
	gen, err := Create(mode)
	if err != nil {
		return Round{}, err
	}
	return gen.NewRound(rng, p), nil
}
