package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxfish/internal/platform/tui"
	"github.com/vovakirdan/boxfish/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs and stage records",
	Long: `Display the runs finished in the fewest steps and the record for every
stage.

Examples:
  boxfish scores
  boxfish scores --limit 20
  boxfish scores --tui
  boxfish scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded result")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mustLoadStages(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.BestRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'boxfish play' to set the first record!")
	} else {
		fmt.Printf("  %-4s  %-12s  %-6s  %-4s  %s\n", "#", "Player", "Steps", "Rank", "Date")
		fmt.Printf("  %-4s  %-12s  %-6s  %-4s  %s\n", "-", "------", "-----", "----", "----")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-12s  %-6d  %-4s  %s\n", i+1, r.Player, r.Steps, r.Rank, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.AllStageStats()
	if err != nil || len(stats) == 0 {
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Println("Stage records")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %s\n", "Stage", "Clears", "Best", "Avg", "Last played")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %s\n", "-----", "------", "----", "---", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-8s  %-6d  %-6d  %-6.1f  %s\n", id, s.Clears, s.BestSteps, s.AvgSteps, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
