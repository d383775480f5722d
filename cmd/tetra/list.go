package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered game mode with how often it was played and its best score.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	var played map[string]*storage.GameStats
	if store := openStore(); store != nil {
		defer store.Close()
		var err error
		if played, err = store.GetAllGamesStats(); err != nil {
			logger.Warn("could not read statistics", "error", err)
		}
	}

	idW, titleW := len("ID"), len("Title")
	for _, m := range modes {
		idW = max(idW, len(m.ID))
		titleW = max(titleW, len(m.Title))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %6s  %9s  %s\n", idW, "ID", titleW, "Title", "Games", "Best", "Description")
	for _, m := range modes {
		games, best := 0, 0
		if st, ok := played[m.ID]; ok {
			games, best = st.GamesCount, st.HighScore
		}
		fmt.Printf("  %-*s  %-*s  %6d  %9d  %s\n", idW, m.ID, titleW, m.Title, games, best, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tetra play <id>' to play a mode.")
}
