package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbot/internal/quiz"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a quiz mode and player, then play",
	Long: `Start colorbot with a short setup form.

Choose a quiz mode and type the player's name, then the quiz starts.
The name is only shown on screen.

Examples:
  colorbot menu
  colorbot menu --seed 42`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Default player name")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	mode := string(cfg.GameMode())
	player := flagPlayer

	opts := []huh.Option[string]{
		huh.NewOption("Surprise me (random)", string(quiz.ModeRandom)),
	}
	for _, m := range quiz.List() {
		opts = append(opts, huh.NewOption(m.Title, string(m.Mode)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which quiz?").
				Options(opts...).
				Value(&mode),
			huh.NewInput().
				Title("Who is playing?").
				Placeholder("name (optional)").
				Value(&player),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg.Mode = mode
	if err := startSession(cfg, player); err != nil {
		fmt.Fprintf(os.Stderr, "Error running quiz: %v\n", err)
		os.Exit(1)
	}
}
