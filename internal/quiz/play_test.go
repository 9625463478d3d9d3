package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colorbot/internal/robot"
	"github.com/vovakirdan/colorbot/internal/wheel"
)

// scriptedRobot records what it was asked to say and in which order.
type scriptedRobot struct {
	calls   []string
	sayErr  error
	sayFail int // fail on this call number (1-based); 0 never fails
}

func (r *scriptedRobot) SayText(_ context.Context, text string) error {
	r.calls = append(r.calls, "say:"+text)
	if r.sayFail == len(r.calls) {
		return r.sayErr
	}
	return nil
}

// scriptedFinder returns err from Run, or waits for the context when block is set.
type scriptedFinder struct {
	robot *scriptedRobot
	err   error
	block bool
}

func (f *scriptedFinder) Run(ctx context.Context) error {
	f.robot.calls = append(f.robot.calls, "search")
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func factoryFor(err error, block bool, gotTarget *wheel.Color) robot.FinderFactory {
	return func(r robot.Robot, target wheel.Color) robot.Finder {
		*gotTarget = target
		return &scriptedFinder{robot: r.(*scriptedRobot), err: err, block: block}
	}
}

var testRound = Round{
	Mode:   ModeComplement,
	Shown:  []wheel.Color{wheel.Blue},
	Target: wheel.Orange,
	Prompt: "What color is opposite of blue",
}

func TestPlaySpeaksThenSearches(t *testing.T) {
	r := &scriptedRobot{}
	var target wheel.Color

	out, err := Play(context.Background(), r, factoryFor(nil, false, &target), testRound, PlayOptions{})
	require.NoError(t, err)

	assert.True(t, out.Found)
	assert.False(t, out.TimedOut)
	assert.Equal(t, wheel.Orange, target)
	assert.Equal(t, []string{"say:What color is opposite of blue", "search"}, r.calls)
}

func TestPlayCelebrates(t *testing.T) {
	r := &scriptedRobot{}
	var target wheel.Color

	opts := PlayOptions{Prompts: DefaultPrompts()}
	_, err := Play(context.Background(), r, factoryFor(nil, false, &target), testRound, opts)
	require.NoError(t, err)

	require.Len(t, r.calls, 3)
	assert.Equal(t, "say:orange is correct! Great job!", r.calls[2])
}

func TestPlaySearchTimeout(t *testing.T) {
	r := &scriptedRobot{}
	var target wheel.Color

	opts := PlayOptions{Prompts: DefaultPrompts(), SearchTimeout: 10 * time.Millisecond}
	out, err := Play(context.Background(), r, factoryFor(nil, true, &target), testRound, opts)
	require.NoError(t, err)

	assert.False(t, out.Found)
	assert.True(t, out.TimedOut)
	assert.GreaterOrEqual(t, out.Duration, 10*time.Millisecond)
	assert.Equal(t, "say:The answer was orange. Let's try another one!", r.calls[len(r.calls)-1])
}

func TestPlayCancelledIsAnError(t *testing.T) {
	r := &scriptedRobot{}
	var target wheel.Color

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Play(ctx, r, factoryFor(context.Canceled, false, &target), testRound, PlayOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, out.Found)
	assert.False(t, out.TimedOut)
}

func TestPlayPromptFailureSkipsSearch(t *testing.T) {
	boom := errors.New("speaker unplugged")
	r := &scriptedRobot{sayErr: boom, sayFail: 1}
	var target wheel.Color

	_, err := Play(context.Background(), r, factoryFor(nil, false, &target), testRound, PlayOptions{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"say:What color is opposite of blue"}, r.calls)
}

func TestPlayFinderFailure(t *testing.T) {
	r := &scriptedRobot{}
	var target wheel.Color

	_, err := Play(context.Background(), r, factoryFor(robot.ErrNoCamera, false, &target), testRound, PlayOptions{})
	assert.ErrorIs(t, err, robot.ErrNoCamera)
}

func TestPlayWithVirtualRobot(t *testing.T) {
	v := robot.NewVirtual(robot.VirtualOptions{})
	newFinder := robot.NewFinderFactory(nil, nil)

	done := make(chan Outcome, 1)
	go func() {
		out, err := Play(context.Background(), v, newFinder, testRound, PlayOptions{})
		assert.NoError(t, err)
		done <- out
	}()

	// Wait for the search to start, then show the right card
	for e := range v.Events() {
		if e.Kind == robot.EventSearching {
			break
		}
	}
	require.True(t, v.ShowCard(wheel.Blue))
	for e := range v.Events() {
		if e.Kind == robot.EventSaw {
			break
		}
	}
	require.True(t, v.ShowCard(wheel.Orange))

	select {
	case out := <-done:
		assert.True(t, out.Found)
		assert.Equal(t, 1, out.Misses)
		assert.Equal(t, 0, out.Hints)
	case <-time.After(time.Second):
		t.Fatal("round did not finish")
	}
}
