package robot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbot/internal/wheel"
)

// ErrNoCamera is returned by ColorFinder when the robot cannot see.
var ErrNoCamera = errors.New("robot: robot has no camera")

// ColorFinder looks through a robot's Camera until it sees the target color.
// Any frame of the right color ends the search, whether or not it came from a
// quiz card.
type ColorFinder struct {
	robot  Robot
	target wheel.Color
	clue   string
	logger *log.Logger
	stats  SearchStats
}

// NewColorFinder creates a finder for target. clue is spoken when the hint
// cube is tapped; an empty clue falls back to naming the target.
func NewColorFinder(r Robot, target wheel.Color, clue string, logger *log.Logger) *ColorFinder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ColorFinder{
		robot:  r,
		target: target,
		clue:   clue,
		logger: logger,
	}
}

// NewFinderFactory returns a FinderFactory that builds ColorFinders with the
// given per-color hint clues.
func NewFinderFactory(clues map[wheel.Color]string, logger *log.Logger) FinderFactory {
	return func(r Robot, target wheel.Color) Finder {
		return NewColorFinder(r, target, clues[target], logger)
	}
}

// Target returns the color being searched for.
func (f *ColorFinder) Target() wheel.Color {
	return f.target
}

// Stats implements StatsReporter.
func (f *ColorFinder) Stats() SearchStats {
	return f.stats
}

// Hint returns the text spoken when the hint cube is tapped.
func (f *ColorFinder) Hint() string {
	if f.clue != "" {
		return f.clue
	}
	return fmt.Sprintf("I am looking for %s", f.target)
}

// Run implements Finder.
func (f *ColorFinder) Run(ctx context.Context) error {
	cam, ok := f.robot.(Camera)
	if !ok {
		return fmt.Errorf("%w: cannot look for %s", ErrNoCamera, f.target)
	}

	// Cards shown or taps made while the robot was talking were not seen
	drain(cam)

	f.logger.Debug("searching", "target", f.target)
	cam.Report(Event{Kind: EventSearching, Color: f.target})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case c := <-cam.Frames():
			if c == f.target {
				f.logger.Debug("found", "target", f.target)
				cam.Report(Event{Kind: EventFound, Color: c})
				return nil
			}
			f.stats.Misses++
			f.logger.Debug("saw", "color", c, "target", f.target)
			cam.Report(Event{Kind: EventSaw, Color: c})

		case <-cam.Taps():
			f.stats.Hints++
			f.logger.Debug("hint requested", "target", f.target)
			cam.Report(Event{Kind: EventHint, Color: f.target})
			if err := f.robot.SayText(ctx, f.Hint()); err != nil {
				return fmt.Errorf("robot: hint: %w", err)
			}
			drain(cam)
			cam.Report(Event{Kind: EventSearching, Color: f.target})
		}
	}
}

// drain discards any pending frames and taps.
func drain(cam Camera) {
	for {
		select {
		case <-cam.Frames():
		case <-cam.Taps():
		default:
			return
		}
	}
}
