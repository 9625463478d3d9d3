// colorbot is a color wheel quiz for children, played with a small robot.
//
// The robot asks a question about the color wheel, then looks around for a
// card of the right color. In the terminal the robot is simulated: number
// keys hold up cards and h taps the hint cube.
//
// Usage:
//
//	colorbot list              - List quiz modes
//	colorbot play [mode]       - Play (mode: random, complement, mix)
//	colorbot menu              - Pick mode and player name interactively, then play
//	colorbot ask [mode]        - Print questions and answers without a robot
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.colorbot/config.yaml, ./configs/colorbot.yaml)
//	--seed <value>      - RNG seed for reproducible questions
//	--fps <rate>        - UI tick rate (default: 30)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorbot",
	Short: "colorbot - a color wheel quiz played with a robot",
	Long: `colorbot tests children's knowledge of the color wheel.

There are two quiz modes:
  complement  - The robot names a color; show it the opposite color
  mix         - The robot names two primary colors; show it the color they make

Available commands:
  list   - Show quiz modes
  play   - Play (a random mode each round unless one is given)
  menu   - Pick a mode and player name, then play
  ask    - Print questions and answers without a robot

Examples:
  colorbot play
  colorbot play mix
  colorbot menu
  colorbot ask complement --count 6`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(askCmd)
}
