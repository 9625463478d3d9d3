package robot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vovakirdan/colorbot/internal/wheel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// nextEvent waits for the next robot event, failing the test after a second.
func nextEvent(t *testing.T, v *Virtual) Event {
	t.Helper()
	select {
	case e := <-v.Events():
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for robot event")
		return Event{}
	}
}

// mute is a robot that talks but has no camera.
type mute struct{}

func (mute) SayText(context.Context, string) error { return nil }

func TestSpeechDuration(t *testing.T) {
	v := NewVirtual(VirtualOptions{WordsPerMinute: 60})

	assert.Equal(t, 3*time.Second, v.SpeechDuration("what color is"))
	assert.Equal(t, time.Duration(0), v.SpeechDuration("   "))

	instant := NewVirtual(VirtualOptions{})
	assert.Equal(t, time.Duration(0), instant.SpeechDuration("what color is opposite of blue"))
}

func TestSayTextReportsSpeech(t *testing.T) {
	v := NewVirtual(VirtualOptions{})

	require.NoError(t, v.SayText(context.Background(), "What color is opposite of red"))

	start := nextEvent(t, v)
	assert.Equal(t, EventSpeech, start.Kind)
	assert.Equal(t, "What color is opposite of red", start.Text)

	done := nextEvent(t, v)
	assert.Equal(t, EventSpeechDone, done.Kind)
}

func TestSayTextCancelled(t *testing.T) {
	v := NewVirtual(VirtualOptions{WordsPerMinute: 1})
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- v.SayText(ctx, "a very slow sentence") }()

	assert.Equal(t, EventSpeech, nextEvent(t, v).Kind)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("SayText did not return after cancel")
	}
}

func TestShowCardDoesNotBlock(t *testing.T) {
	v := NewVirtual(VirtualOptions{})

	assert.True(t, v.ShowCard(wheel.Red))
	assert.False(t, v.ShowCard(wheel.Blue), "second card should be refused until the first is seen")
	assert.True(t, v.TapCube())
	assert.False(t, v.TapCube())
}

func TestFinderFindsTarget(t *testing.T) {
	v := NewVirtual(VirtualOptions{})
	f := NewColorFinder(v, wheel.Green, "", nil)

	errCh := make(chan error, 1)
	go func() { errCh <- f.Run(context.Background()) }()

	searching := nextEvent(t, v)
	require.Equal(t, EventSearching, searching.Kind)
	assert.Equal(t, wheel.Green, searching.Color)

	require.True(t, v.ShowCard(wheel.Orange))
	saw := nextEvent(t, v)
	assert.Equal(t, EventSaw, saw.Kind)
	assert.Equal(t, wheel.Orange, saw.Color)

	require.True(t, v.ShowCard(wheel.Green))
	found := nextEvent(t, v)
	assert.Equal(t, EventFound, found.Kind)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("finder did not return after finding target")
	}
	assert.Equal(t, SearchStats{Misses: 1}, f.Stats())
}

func TestFinderHint(t *testing.T) {
	v := NewVirtual(VirtualOptions{})
	factory := NewFinderFactory(map[wheel.Color]string{
		wheel.Purple: "It is the color of grapes",
	}, nil)
	f := factory(v, wheel.Purple)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- f.Run(ctx) }()

	require.Equal(t, EventSearching, nextEvent(t, v).Kind)
	require.True(t, v.TapCube())

	assert.Equal(t, EventHint, nextEvent(t, v).Kind)
	speech := nextEvent(t, v)
	assert.Equal(t, EventSpeech, speech.Kind)
	assert.Equal(t, "It is the color of grapes", speech.Text)
	assert.Equal(t, EventSpeechDone, nextEvent(t, v).Kind)
	assert.Equal(t, EventSearching, nextEvent(t, v).Kind)

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("finder did not return after cancel")
	}

	sr, ok := f.(StatsReporter)
	require.True(t, ok)
	assert.Equal(t, SearchStats{Hints: 1}, sr.Stats())
}

func TestFinderDefaultHint(t *testing.T) {
	f := NewColorFinder(NewVirtual(VirtualOptions{}), wheel.Blue, "", nil)
	assert.Equal(t, "I am looking for blue", f.Hint())
	assert.Equal(t, wheel.Blue, f.Target())
}

func TestFinderIgnoresCardsShownWhileTalking(t *testing.T) {
	v := NewVirtual(VirtualOptions{})
	require.True(t, v.ShowCard(wheel.Red))

	f := NewColorFinder(v, wheel.Red, "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- f.Run(ctx) }()

	require.Equal(t, EventSearching, nextEvent(t, v).Kind)

	select {
	case e := <-v.Events():
		t.Fatalf("unexpected event %v before any card was shown", e.Kind)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func TestFinderWithoutCamera(t *testing.T) {
	f := NewColorFinder(mute{}, wheel.Yellow, "", nil)
	err := f.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoCamera)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "Found", EventFound.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}

func TestCloseEndsEventStream(t *testing.T) {
	v := NewVirtual(VirtualOptions{})
	v.Report(Event{Kind: EventSearching})
	v.Close()
	v.Close()

	// Reports after Close are dropped, buffered ones still arrive
	v.Report(Event{Kind: EventFound})

	e, ok := <-v.Events()
	require.True(t, ok)
	assert.Equal(t, EventSearching, e.Kind)

	_, ok = <-v.Events()
	assert.False(t, ok)
}
