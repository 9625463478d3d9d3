package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbot/internal/quiz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quiz modes",
	Long:  `Shows every quiz mode the robot can play.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := quiz.List()

	if len(modes) == 0 {
		fmt.Println("No quiz modes available.")
		return
	}

	fmt.Println("Quiz modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := len(quiz.ModeRandom)
	for _, m := range modes {
		if len(m.Mode) > maxIDLen {
			maxIDLen = len(m.Mode)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "Mode", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "----", "-----------")

	// Print modes
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.Mode, m.Description)
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, quiz.ModeRandom, "A new mode is picked at random for every question.")

	fmt.Println()
	fmt.Println("Run 'colorbot play <mode>' to play.")
}
