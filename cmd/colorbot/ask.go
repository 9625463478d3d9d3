package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbot/internal/quiz"
)

var flagCount int

var askCmd = &cobra.Command{
	Use:   "ask [mode]",
	Short: "Print quiz questions and their answers",
	Long: `Draw questions the way the robot would and print them with the answer.
Useful for checking prompt templates or printing a worksheet.

Examples:
  colorbot ask
  colorbot ask mix --count 3
  colorbot ask complement --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAsk,
}

func init() {
	askCmd.Flags().IntVar(&flagCount, "count", 1, "Number of questions")
}

func runAsk(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(os.Stderr)

	mode := cfg.GameMode()
	if len(args) == 1 {
		parsed, err := quiz.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'colorbot list' to see quiz modes.")
			os.Exit(1)
		}
		mode = parsed
	}

	seed := resolveSeed(flagSeed, time.Now)
	logger.Debug("drawing questions", "mode", mode, "count", flagCount, "seed", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < max(flagCount, 1); i++ {
		round, err := quiz.NewRound(mode, rng, cfg.Prompts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%d. [%s] %s?\n", i+1, round.Mode, strings.TrimRight(round.Prompt, "?"))
		fmt.Printf("   Answer: %s\n", round.Target)
	}
}
