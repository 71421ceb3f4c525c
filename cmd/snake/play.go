package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/gui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSeed int64
	flagGUI  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

Controls (defaults, see 'snake keys'):
  Arrows/WASD  - Steer
  P            - Pause / resume
  Space        - New game
  Tab          - Rounds played this session (when not running)
  Esc/Q/Ctrl+C - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --gui`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	bindPlayFlags(playCmd)
}

// bindPlayFlags registers the play flags on cmd. The root command runs play too.
func bindPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "Food placement seed (0 = config value or random)")
	cmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplySeed(flagSeed)

	logger, closer, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("config loaded", "source", cfg.Source, "seed", cfg.Seed)

	// The ledger is optional: play on without it.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session ledger", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if flagGUI {
		err = gui.Run(gui.Options{Config: cfg, Store: store, Logger: logger})
		if errors.Is(err, gui.ErrUnavailable) {
			return fmt.Errorf("%w\nRe-build with `go build -tags ebiten ./cmd/snake`", err)
		}
	} else {
		// Terminal size for the first frame; Runtime falls back to 80x24.
		width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			logger.Debug("terminal size unavailable", "error", termErr)
		}
		err = tui.Run(tui.Options{
			Config: cfg,
			Store:  store,
			Logger: logger,
			Screen: cfg.Runtime(width, height),
		})
	}
	if err != nil {
		logger.Error("game exited", "error", err)
		return err
	}

	if store != nil {
		if err := writeSummary(cmd.OutOrStdout(), store); err != nil {
			logger.Warn("could not summarize session", "error", err)
		}
	}
	return nil
}

// writeSummary prints the session's rounds after the game closes.
func writeSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if stats.Rounds == 0 {
		return nil
	}

	best, _, err := store.Best()
	if err != nil {
		return err
	}

	plural := "s"
	if stats.Rounds == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "Played %d round%s this session.\n", stats.Rounds, plural)
	fmt.Fprintf(w, "  High score:    %d (length %d, %s)\n", best.Score, best.Length, best.Duration().Round(time.Second))
	fmt.Fprintf(w, "  Average score: %.1f\n", stats.AvgScore)
	fmt.Fprintf(w, "  Longest snake: %d\n", stats.LongestSnake)
	return nil
}
