package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbot/internal/robot"
)

// PlayOptions configures a single round.
type PlayOptions struct {
	Prompts       Prompts
	SearchTimeout time.Duration // 0 searches until found or cancelled
	Logger        *log.Logger
}

// Outcome describes how a round ended.
type Outcome struct {
	Round    Round
	Found    bool
	TimedOut bool
	Misses   int           // Wrong colors the finder saw
	Hints    int           // Hint cube taps the finder answered
	Duration time.Duration // From the start of the prompt to the end of the search
}

// Play runs one round: the robot speaks the prompt, then a finder built for
// the round's target searches until the color is seen.
//
// Errors from the robot or the finder are returned as-is (wrapped). A search
// that outlives SearchTimeout is not an error: the robot says the answer and
// the outcome is marked TimedOut.
func Play(ctx context.Context, r robot.Robot, newFinder robot.FinderFactory, round Round, opts PlayOptions) (Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	out := Outcome{Round: round}

	logger.Info("round started", "mode", round.Mode, "shown", round.Shown, "target", round.Target)

	if err := r.SayText(ctx, round.Prompt); err != nil {
		return out, fmt.Errorf("quiz: prompt: %w", err)
	}

	finder := newFinder(r, round.Target)

	searchCtx, cancel := ctx, context.CancelFunc(func() {})
	if opts.SearchTimeout > 0 {
		searchCtx, cancel = context.WithTimeout(ctx, opts.SearchTimeout)
	}
	err := finder.Run(searchCtx)
	cancel()
	out.Duration = time.Since(start)
	if sr, ok := finder.(robot.StatsReporter); ok {
		st := sr.Stats()
		out.Misses, out.Hints = st.Misses, st.Hints
	}

	switch {
	case err == nil:
		out.Found = true
		logger.Info("round won", "target", round.Target, "duration", out.Duration, "misses", out.Misses, "hints", out.Hints)
		if opts.Prompts.Celebrate != "" {
			if err := r.SayText(ctx, fmt.Sprintf(opts.Prompts.Celebrate, round.Target)); err != nil {
				return out, fmt.Errorf("quiz: celebrate: %w", err)
			}
		}

	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		out.TimedOut = true
		logger.Info("round timed out", "target", round.Target, "timeout", opts.SearchTimeout)
		if opts.Prompts.GiveUp != "" {
			if err := r.SayText(ctx, fmt.Sprintf(opts.Prompts.GiveUp, round.Target)); err != nil {
				return out, fmt.Errorf("quiz: give up: %w", err)
			}
		}

	default:
		return out, fmt.Errorf("quiz: search for %s: %w", round.Target, err)
	}

	return out, nil
}
