package config

import (
	_ "embed"

	"github.com/vovakirdan/colorbot/internal/quiz"
)

//go:embed defaults/colorbot.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Mode: string(quiz.ModeRandom),
		Speech: SpeechConfig{
			WordsPerMinute: 150,
		},
		Search: SearchConfig{
			Timeout: 0,
		},
		Prompts: quiz.DefaultPrompts(),
		Clues: map[string]string{
			"yellow": "Hint: it is the color of a banana",
			"green":  "Hint: it is the color of grass",
			"blue":   "Hint: it is the color of the sky",
			"purple": "Hint: it is the color of grapes",
			"red":    "Hint: it is the color of a fire truck",
			"orange": "Hint: it is the color of a pumpkin",
		},
	}
}

// DefaultYAML returns the embedded default YAML, for users to copy and edit.
func DefaultYAML() []byte {
	return defaultYAML
}
