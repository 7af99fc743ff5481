package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresRuns  bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, or the most recent runs with their settings.

Examples:
  loop scores
  loop scores --runs --limit 20
  loop scores --tui
  loop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "List recent runs instead of top scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show (0 = all scores)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores("loop"); err != nil {
			store.Close()
			exitf("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, "loop", width, height); err != nil {
			store.Close()
			exitf("running scoreboard: %v", err)
		}
		return
	}

	if flagScoresRuns {
		printRuns(store)
		return
	}
	printScores(store)
}

func printScores(store *storage.Store) {
	var scores []storage.ScoreEntry
	var err error
	if flagScoresLimit <= 0 {
		scores, err = store.AllScores("loop")
	} else {
		scores, err = store.TopScores("loop", flagScoresLimit)
	}
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Loop")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'loop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err = store.GetGameStats("loop")
	if err != nil {
		return
	}
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Last played: %s\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore,
		stats.LastPlayed.Format("2006-01-02 15:04"),
	)
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		store.Close()
		exitf("retrieving runs: %v", err)
	}

	fmt.Println("Recent Runs - Loop")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %-6s  %-9s  %s\n", "Score", "Hits", "Delay", "Speed", "Mult", "Interval", "Date")
	for _, r := range runs {
		fmt.Printf("  %-8.0f  %-5d  %-6.2f  %-6s  %-6.2f  %-9.3f  %s\n",
			r.Score, r.Hits, r.LoopDelay,
			fmt.Sprintf("%.0f%%", r.SpeedMultiplier*100),
			r.Multiplier, r.FinalInterval,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
