package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorbot/internal/config"
	"github.com/vovakirdan/colorbot/internal/core"
	"github.com/vovakirdan/colorbot/internal/platform/tui"
	"github.com/vovakirdan/colorbot/internal/quiz"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the color quiz",
	Long: `Start a quiz session with the virtual robot.

The robot asks a question, then looks for the answer. Hold up a card
by pressing its number. If the player is stuck, tap the hint cube and
the robot stops to give a clue.

Controls:
  1-6        - Show a card (yellow, green, blue, purple, red, orange)
  H          - Tap the hint cube
  N/Enter    - Next question (after a round ends)
  ?          - More keys
  Q/Ctrl+C   - Quit

Modes:
  random      - Pick complement or mix for every question (default)
  complement  - Opposite colors on the wheel
  mix         - Two primaries make which secondary?

Examples:
  colorbot play
  colorbot play complement
  colorbot play mix --player Sam
  colorbot play --config ./slow-robot.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name shown on screen")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	if len(args) == 1 {
		mode, err := quiz.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'colorbot list' to see quiz modes.")
			os.Exit(1)
		}
		cfg.Mode = string(mode)
	}

	if err := startSession(cfg, flagPlayer); err != nil {
		fmt.Fprintf(os.Stderr, "Error running quiz: %v\n", err)
		os.Exit(1)
	}
}

// mustLoadConfig loads configuration or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// startSession runs the terminal quiz until the player quits.
func startSession(cfg config.Config, player string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed(flagSeed, time.Now)
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
		Player:   player,
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("session started", "mode", cfg.GameMode(), "player", player, "seed", seed)
	runErr := tui.Run(cfg, rt, logger)
	logger.Info("session ended")
	return runErr
}

// resolveSeed returns seed, or a time-based seed when it is 0, so the seed
// that was actually used can be logged and replayed with --seed.
func resolveSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now().UnixNano()
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorbot",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// sessionLogger returns the logger used while the TUI owns the terminal.
// Without --log-file, logs are discarded so they do not tear the screen.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", flagLogFile, err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}
