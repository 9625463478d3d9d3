package robot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/colorbot/internal/wheel"
)

// VirtualOptions configures a Virtual robot.
type VirtualOptions struct {
	WordsPerMinute int // Speech rate; <= 0 speaks instantly
	EventBuffer    int // Events held for a slow watcher before new ones are dropped
}

// DefaultVirtualOptions returns options with a child-friendly speech rate.
func DefaultVirtualOptions() VirtualOptions {
	return VirtualOptions{
		WordsPerMinute: 150,
		EventBuffer:    64,
	}
}

// Virtual is an in-process robot. Speech takes as long as it would take to
// say the words aloud, cards are "shown" to its camera with ShowCard, and the
// hint cube is tapped with TapCube.
type Virtual struct {
	wpm    int
	frames chan wheel.Color
	taps   chan struct{}
	events chan Event

	mu     sync.Mutex
	closed bool
}

// NewVirtual creates a Virtual robot.
func NewVirtual(opts VirtualOptions) *Virtual {
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = DefaultVirtualOptions().EventBuffer
	}
	return &Virtual{
		wpm:    opts.WordsPerMinute,
		frames: make(chan wheel.Color, 1),
		taps:   make(chan struct{}, 1),
		events: make(chan Event, opts.EventBuffer),
	}
}

// SayText implements Robot.
func (v *Virtual) SayText(ctx context.Context, text string) error {
	v.Report(Event{Kind: EventSpeech, Text: text})

	if d := v.SpeechDuration(text); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	v.Report(Event{Kind: EventSpeechDone, Text: text})
	return nil
}

// SpeechDuration returns how long the robot takes to say text.
func (v *Virtual) SpeechDuration(text string) time.Duration {
	words := len(strings.Fields(text))
	if words == 0 || v.wpm <= 0 {
		return 0
	}
	return time.Duration(words) * time.Minute / time.Duration(v.wpm)
}

// ShowCard holds a card of color c up to the camera.
// Returns false if the previous card has not been looked at yet.
func (v *Virtual) ShowCard(c wheel.Color) bool {
	select {
	case v.frames <- c:
		return true
	default:
		return false
	}
}

// TapCube taps the hint cube. Returns false if a tap is already pending.
func (v *Virtual) TapCube() bool {
	select {
	case v.taps <- struct{}{}:
		return true
	default:
		return false
	}
}

// Frames implements Camera.
func (v *Virtual) Frames() <-chan wheel.Color {
	return v.frames
}

// Taps implements Camera.
func (v *Virtual) Taps() <-chan struct{} {
	return v.taps
}

// Report implements Camera. Events are dropped when the buffer is full or
// the robot is closed.
func (v *Virtual) Report(e Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	select {
	case v.events <- e:
	default:
	}
}

// Events returns the stream of robot events.
func (v *Virtual) Events() <-chan Event {
	return v.events
}

// Close ends the event stream. Events already buffered are still delivered.
func (v *Virtual) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.closed {
		v.closed = true
		close(v.events)
	}
}

// Ensure Virtual implements Robot and Camera
var (
	_ Robot  = (*Virtual)(nil)
	_ Camera = (*Virtual)(nil)
)
