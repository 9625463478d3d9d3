// Package robot describes the robot and vision surface the quiz drives.
//
// The quiz only needs two things from a robot: it must be able to speak, and
// a color finder must be constructible from the robot handle and a target
// color. Everything about locating that color in a camera feed happens behind
// Finder. The Virtual robot and ColorFinder in this package stand in for the
// physical robot and its vision module so the game can run in a terminal.
package robot

import (
	"context"

	"github.com/vovakirdan/colorbot/internal/wheel"
)

// Robot is a handle to a robot that can talk.
type Robot interface {
	// SayText speaks text and returns once the robot has finished speaking.
	SayText(ctx context.Context, text string) error
}

// Finder searches for a single color.
type Finder interface {
	// Run blocks until the target color is detected (nil), the context ends,
	// or the robot fails.
	Run(ctx context.Context) error
}

// FinderFactory builds a Finder for a robot and a target color.
type FinderFactory func(r Robot, target wheel.Color) Finder

// Camera is the optional robot capability ColorFinder looks through.
type Camera interface {
	// Frames delivers the dominant color of each camera frame that shows a card.
	Frames() <-chan wheel.Color
	// Taps delivers a value each time the hint cube is tapped.
	Taps() <-chan struct{}
	// Report publishes a search event to whoever is watching the robot.
	Report(e Event)
}

// SearchStats counts what happened during one search.
type SearchStats struct {
	Misses int // Wrong colors seen
	Hints  int // Hint cube taps answered
}

// StatsReporter is implemented by finders that count their search.
// Stats is read after Run has returned.
type StatsReporter interface {
	Stats() SearchStats
}
