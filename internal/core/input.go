package core

import "github.com/vovakirdan/colorbot/internal/wheel"

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionShowCard        // 1-6 - hold a color card up to the robot
	ActionHint            // H - tap the hint cube
	ActionNext            // N, Enter - next question after a round ends
	ActionHelp            // ? - toggle full key help
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShowCard:
		return "ShowCard"
	case ActionHint:
		return "Hint"
	case ActionNext:
		return "Next"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one player action. Card is set only for ActionShowCard.
type Input struct {
	Action Action
	Card   wheel.Color
}
