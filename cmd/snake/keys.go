package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long:  `Shows the keys bound to each game action in the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		writeKeys(cmd.OutOrStdout(), cfg.Keys)
		return nil
	},
}

// actionLabels are the descriptions shown for each action.
var actionLabels = map[core.Action]string{
	core.ActionUp:          "Steer up",
	core.ActionDown:        "Steer down",
	core.ActionLeft:        "Steer left",
	core.ActionRight:       "Steer right",
	core.ActionPauseToggle: "Pause / resume",
	core.ActionNewGame:     "New game",
	core.ActionQuit:        "Quit",
}

func writeKeys(w io.Writer, keys config.KeyConfig) {
	// Calculate column widths
	maxLen := len("Action")
	for _, a := range core.Actions {
		maxLen = max(maxLen, len(actionLabels[a]))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "------", "----")
	for _, a := range core.Actions {
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, actionLabels[a], strings.Join(keys.For(a), ", "))
	}
	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Session rounds", config.LedgerKey)
}
