// tetra is a terminal falling-block puzzle game with a 7-bag randomizer,
// SRS-style kicks, T-Spin detection and a Line150 / Line999 goal.
//
// Usage:
//
//	tetra list              - List available modes
//	tetra play [mode]       - Play a mode (default tetra150)
//	tetra menu              - Pick modes interactively
//	tetra serve             - Start SSH server for remote play
//	tetra scores [mode]     - Show high scores and statistics
//
// Global flags (also read from TETRA_* environment variables):
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tetra/scores.db)
//	--config <path>     - Rules config YAML
//	--preset <name>     - Difficulty preset: easy, normal, hard, extreme
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra"
)

// Setting keys, shared by flags and TETRA_* environment variables.
const (
	keyFPS      = "fps"
	keySeed     = "seed"
	keyDB       = "db"
	keyConfig   = "config"
	keyPreset   = "preset"
	keyLogLevel = "log-level"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tetra",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - a falling-block puzzle game for your terminal",
	Long: `Tetra is a terminal falling-block puzzle game: 7-bag randomizer,
hold, six-piece preview, wall kicks, T-Spins, REN and back-to-back bonuses.
Clear 150 (or 999) lines to win.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and statistics

Examples:
  tetra play
  tetra play tetra999 --level 10
  tetra play --fixture doublequad --seed 42
  tetra menu --preset hard
  TETRA_DB=./scores.db tetra scores
  tetra serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applySettings()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int(keyFPS, 60, "Tick rate (frames per second)")
	flags.Int64(keySeed, 0, "RNG seed (0 = random based on time)")
	flags.String(keyDB, "~/.tetra/scores.db", "Path to scores database")
	flags.String(keyConfig, "", "Path to custom rules config YAML")
	flags.String(keyPreset, "", "Difficulty preset: easy, normal, hard, extreme")
	flags.String(keyLogLevel, "info", "Log level: debug, info, warn, error")

	for _, k := range []string{keyFPS, keySeed, keyDB, keyConfig, keyPreset, keyLogLevel} {
		//nolint:errcheck // flags are defined above
		viper.BindPFlag(k, flags.Lookup(k))
	}
	viper.SetEnvPrefix("TETRA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applySettings validates the global settings and hands the rules-related
// ones to the game package.
func applySettings() error {
	level, err := log.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString(keyLogLevel), err)
	}
	logger.SetLevel(level)

	if fps := viper.GetInt(keyFPS); fps < 1 || fps > 240 {
		return fmt.Errorf("invalid fps %d (1..240)", fps)
	}

	if p := viper.GetString(keyPreset); p != "" {
		if _, err := config.ParsePreset(p); err != nil {
			return err
		}
	}
	tetra.SetConfigPath(viper.GetString(keyConfig))
	tetra.SetDifficultyPreset(viper.GetString(keyPreset))

	// Surface config errors up front; the game would silently fall back.
	_, origin, err := config.LoadTetraWithOrigin(viper.GetString(keyConfig))
	if err != nil {
		return err
	}
	for _, skipped := range origin.Skipped {
		logger.Warn("ignoring config file", "error", skipped)
	}
	logger.Debug("rules loaded", "source", origin.Source)
	return nil
}

// loadRules returns the rules config the game will use.
func loadRules() config.TetraConfig {
	cfg, err := config.LoadTetra(viper.GetString(keyConfig))
	if err != nil {
		return config.DefaultTetraConfig()
	}
	return cfg
}
