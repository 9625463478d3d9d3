package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// ErrUnknownMode is returned for a mode that was never registered.
var ErrUnknownMode = errors.New("quiz: unknown mode")

// Generator produces rounds for one game mode.
type Generator interface {
	// Mode returns the identifier used on the command line (e.g. "mix").
	Mode() Mode

	// Title returns a human-readable name for display.
	Title() string

	// Describe returns a one-line explanation for players.
	Describe() string

	// NewRound draws a new question.
	NewRound(rng *rand.Rand, p Prompts) Round
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	Mode        Mode
	Title       string
	Description string
}

// Factory is a function that creates a Generator.
type Factory func() Generator

var (
	factories = make(map[Mode]Factory)
	infos     = make(map[Mode]ModeInfo)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if the mode is already registered.
func Register(mode Mode, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[mode]; exists {
		panic(fmt.Sprintf("quiz: mode %q already registered", mode))
	}

	factories[mode] = f

	g := f()
	infos[mode] = ModeInfo{
		Mode:        mode,
		Title:       g.Title(),
		Description: g.Describe(),
	}
}

// List returns all registered modes sorted by identifier.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Mode < result[j].Mode
	})

	return result
}

// Create instantiates the generator for mode.
func Create(mode Mode) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[mode]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	return f(), nil
}

// Exists checks if mode is registered.
func Exists(mode Mode) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[mode]
	return ok
}

// ParseMode validates a mode name from user input. "random" and "" are
// accepted and mean a fresh roll per round.
func ParseMode(name string) (Mode, error) {
	mode := Mode(name)
	if mode == "" || mode == ModeRandom {
		return ModeRandom, nil
	}
	if !Exists(mode) {
		return "", fmt.Errorf("%w %q", ErrUnknownMode, name)
	}
	return mode, nil
}

type complementMode struct{}

func (complementMode) Mode() Mode    { return ModeComplement }
func (complementMode) Title() string { return "Opposite Colors" }
func (complementMode) Describe() string {
	return "The robot names a color; show it the color across the wheel."
}
func (complementMode) NewRound(rng *rand.Rand, p Prompts) Round {
	return NewComplementRound(rng, p)
}

type mixMode struct{}

func (mixMode) Mode() Mode    { return ModeMix }
func (mixMode) Title() string { return "Mixing Primaries" }
func (mixMode) Describe() string {
	return "The robot names two primary colors; show it the color they make."
}
func (mixMode) NewRound(rng *rand.Rand, p Prompts) Round {
	return NewMixRound(rng, p)
}

func init() {
	Register(ModeComplement, func() Generator { return complementMode{} })
	Register(ModeMix, func() Generator { return mixMode{} })
}
