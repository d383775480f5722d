package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagLevel   int
	flagExtreme bool
	flagFixture string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (tetra150 by default).

Controls:
  Left/Right, h/l   - Move
  Down, j           - Soft drop
  Space, Up         - Hard drop
  x / z             - Rotate clockwise / counter-clockwise
  c                 - Hold
  p                 - Pause
  r                 - Restart (after the game ended)
  Esc               - Leave (when paused or finished)
  q, Ctrl+C         - Quit
  Ctrl+S            - Save a text screenshot

Debug fixtures preload a board and mino sequence:
  ` + strings.Join(engine.FixtureNames(), ", ") + `

Examples:
  tetra play
  tetra play tetra999 --level 10
  tetra play --extreme
  tetra play --fixture quadtst --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (0 = config or preset)")
	playCmd.Flags().BoolVar(&flagExtreme, "extreme", false, "Extreme mode (20G gravity)")
	playCmd.Flags().StringVar(&flagFixture, "fixture", "", "Debug board to start from")
}

// runtimeConfig builds the runtime config from the terminal size and the
// global settings.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: viper.GetInt(keyFPS),
		Seed:     viper.GetInt64(keySeed),
	}
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(viper.GetString(keyDB))
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// reportResult logs where a finished game went.
func reportResult(res *tui.Result) {
	switch {
	case res == nil:
	case res.SaveErr != nil:
		logger.Error("could not save game", "game", res.GameID, "error", res.SaveErr)
	case res.RecordID != "":
		logger.Info("game saved", "game", res.GameID, "score", res.Score, "record", res.RecordID)
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tetra150"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetra list' to see available modes", gameID)
	}
	if flagFixture != "" {
		if _, err := engine.LookupFixture(flagFixture); err != nil {
			return err
		}
	}
	if flagLevel < 0 || flagLevel > loadRules().Levels.Max {
		return fmt.Errorf("invalid level %d (1..%d)", flagLevel, loadRules().Levels.Max)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	cfg.StartLevel = flagLevel
	cfg.Extreme = flagExtreme
	cfg.Fixture = flagFixture

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	res, err := tui.Run(game, store, cfg)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	reportResult(res)
	return nil
}
