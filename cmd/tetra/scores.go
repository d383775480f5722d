package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagRecord string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and statistics for a mode",
	Long: `Display the best games of a mode (tetra150 by default) together with
statistics summed over every recorded game.

Examples:
  tetra scores
  tetra scores tetra999 --limit 20
  tetra scores --recent
  tetra scores --record 6f1c0a52-7c43-4f0e-9d8e-2b3a4c5d6e7f
  tetra scores tetra150 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest games instead of the best")
	scoresCmd.Flags().StringVar(&flagRecord, "record", "", "Show every statistic of one recorded game")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and records of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "tetra150"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagRecord == "" && !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetra list' to see available modes", gameID)
	}

	store, err := storage.Open(viper.GetString(keyDB))
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagRecord != "":
		return showRecord(store, flagRecord)
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores of %s.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var records []storage.GameRecord
	heading := "High Scores"
	if flagRecent {
		heading = "Recent Games"
		records, err = store.RecentRecords(gameID, flagLimit)
	} else {
		records, err = store.TopRecords(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", heading, game.Title())

	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetra play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-5s  %-6s  %-8s  %-16s  %s\n",
		"Rank", "Score", "Level", "Lines", "Result", "Time", "Date", "Record")
	fmt.Printf("  %-4s  %-9s  %-5s  %-5s  %-6s  %-8s  %-16s  %s\n",
		"----", "-----", "-----", "-----", "------", "----", "----", "------")
	for i, r := range records {
		fmt.Printf("  %-4d  %-9d  %-5s  %-5d  %-6s  %-8s  %-16s  %s\n",
			i+1, r.Score, levelLabel(r), r.Lines, resultLabel(r),
			core.FormatTicks(r.Frames, viper.GetInt(keyFPS)), r.CreatedAt.Format("2006-01-02 15:04"), r.ID[:8])
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Cleared: %d   Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Cleared, stats.AvgScore)

	totals, err := store.RecordTotals(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	printStatPages(totals)
	return nil
}

func showRecord(store *storage.Store, id string) error {
	r, err := store.RecordByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no record %q", id)
	}

	fmt.Printf("Record %s\n\n", r.ID)
	fmt.Printf("  Mode    %s\n", r.GameID)
	fmt.Printf("  Score   %d\n", r.Score)
	fmt.Printf("  Level   %s\n", levelLabel(*r))
	fmt.Printf("  Lines   %d\n", r.Lines)
	fmt.Printf("  Result  %s\n", resultLabel(*r))
	fmt.Printf("  Time    %s\n", core.FormatTicks(r.Frames, viper.GetInt(keyFPS)))
	fmt.Printf("  Date    %s\n\n", r.CreatedAt.Format("2006-01-02 15:04"))
	printStatPages(r.Stats)
	return nil
}

// printStatPages prints counters grouped the way the end screen shows them.
func printStatPages(values map[string]int) {
	for _, page := range tetra.StatPages(engine.Statistics{}) {
		fmt.Println(page.Title)
		for _, line := range page.Lines {
			fmt.Printf("  %-14s %d\n", line.Label, values[line.Key])
		}
	}
}

func levelLabel(r storage.GameRecord) string {
	if r.Extreme {
		return "EX"
	}
	return fmt.Sprintf("%d", r.Level)
}

func resultLabel(r storage.GameRecord) string {
	if r.Cleared {
		return "clear"
	}
	return "over"
}
