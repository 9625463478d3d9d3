// Package config provides YAML-based configuration loading for colorbot:
// the game mode, how the robot talks, how long it searches, and what it says.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/colorbot/internal/quiz"
	"github.com/vovakirdan/colorbot/internal/wheel"
)

// Config contains all colorbot configuration.
type Config struct {
	Mode    string            `yaml:"mode"`
	Speech  SpeechConfig      `yaml:"speech"`
	Search  SearchConfig      `yaml:"search"`
	Prompts quiz.Prompts      `yaml:"prompts"`
	Clues   map[string]string `yaml:"clues"` // color name -> hint sentence
}

// SpeechConfig defines how the robot talks.
type SpeechConfig struct {
	WordsPerMinute int `yaml:"words_per_minute"`
}

// SearchConfig defines how the robot looks for the answer.
type SearchConfig struct {
	Timeout time.Duration `yaml:"timeout"` // 0 = search until found
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if _, err := quiz.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: mode: %w", err)
	}
	if c.Speech.WordsPerMinute <= 0 {
		return fmt.Errorf("config: speech.words_per_minute must be positive, got %d", c.Speech.WordsPerMinute)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("config: search.timeout must not be negative, got %s", c.Search.Timeout)
	}

	templates := []struct {
		name  string
		value string
		verbs int
		opt   bool // may be empty
	}{
		{"prompts.complement", c.Prompts.Complement, 1, false},
		{"prompts.mix", c.Prompts.Mix, 2, false},
		{"prompts.celebrate", c.Prompts.Celebrate, 1, true},
		{"prompts.give_up", c.Prompts.GiveUp, 1, true},
	}
	for _, tmpl := range templates {
		if tmpl.value == "" && tmpl.opt {
			continue
		}
		if n := strings.Count(tmpl.value, "%s"); n != tmpl.verbs {
			return fmt.Errorf("config: %s needs %d %%s, found %d in %q", tmpl.name, tmpl.verbs, n, tmpl.value)
		}
	}

	for name := range c.Clues {
		if _, err := wheel.ParseColor(name); err != nil {
			return fmt.Errorf("config: clues: %w", err)
		}
	}
	return nil
}

// GameMode returns the parsed game mode. Call Validate first.
func (c Config) GameMode() quiz.Mode {
	mode, err := quiz.ParseMode(c.Mode)
	if err != nil {
		return quiz.ModeRandom
	}
	return mode
}

// ClueMap returns the hint clues keyed by color. Unknown names are skipped.
func (c Config) ClueMap() map[wheel.Color]string {
	clues := make(map[wheel.Color]string, len(c.Clues))
	for name, clue := range c.Clues {
		color, err := wheel.ParseColor(name)
		if err != nil {
			continue
		}
		clues[color] = clue
	}
	return clues
}

// PlayOptions converts the config into per-round quiz options.
func (c Config) PlayOptions() quiz.PlayOptions {
	return quiz.PlayOptions{
		Prompts:       c.Prompts,
		SearchTimeout: c.Search.Timeout,
	}
}
