// Package core provides the small shared types the terminal front end and the
// command line agree on. It has no UI dependencies.
package core

// RuntimeConfig contains configuration passed to a play session at start.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // UI ticks per second (default 30)
	Seed     int64  // RNG seed for reproducible questions
	Player   string // Name shown on screen; empty for anonymous
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}
