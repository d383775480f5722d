package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode, then a difficulty preset, start level and extreme mode.
After a game ends, Esc returns to the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change option
  Enter           - Select
  Tab             - Scoreboard
  Q               - Quit

Examples:
  tetra menu
  tetra menu --fps 30
  tetra menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	maxLevel := loadRules().Levels.Max

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		selection, err := tui.RunTetraOptions(menuResult.Title, maxLevel, cfg)
		if err != nil {
			logger.Error("options screen failed", "error", err)
			continue
		}
		if selection == nil {
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		runCfg := selection.Apply(cfg)
		runCfg.Seed = time.Now().UnixNano()

		res, err := tui.Run(game, store, runCfg)
		if err != nil {
			logger.Error("error running game", "error", err)
		}
		reportResult(res)
	}
}
