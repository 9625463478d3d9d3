package robot

import "github.com/vovakirdan/colorbot/internal/wheel"

// EventKind identifies what the robot just did.
type EventKind int

const (
	EventSpeech     EventKind = iota // Robot started speaking Text
	EventSpeechDone                  // Robot finished speaking Text
	EventSearching                   // Robot is looking around for Color
	EventSaw                         // Robot saw Color but it is not the target
	EventHint                        // Hint cube tapped, robot paused the search
	EventFound                       // Robot found Color
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpeech:
		return "Speech"
	case EventSpeechDone:
		return "SpeechDone"
	case EventSearching:
		return "Searching"
	case EventSaw:
		return "Saw"
	case EventHint:
		return "Hint"
	case EventFound:
		return "Found"
	default:
		return "Unknown"
	}
}

// Event is a single observable step of the robot.
type Event struct {
	Kind  EventKind
	Text  string      // Speech and SpeechDone
	Color wheel.Color // Searching, Saw, Found
}
