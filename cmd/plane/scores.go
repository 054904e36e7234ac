package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/platform/tui"
	"github.com/vovakirdan/flappy-plane/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagInteractive      bool
	flagRecent           bool
	flagClear            bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the high score and the best recorded runs.

Examples:
  plane scores
  plane scores --difficulty hard --limit 5
  plane scores --recent
  plane scores --interactive
  plane scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs for this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scoreboard")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty := ""
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(d)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, difficulty, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearRuns(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	title := "all difficulties"
	if difficulty != "" {
		title = config.Difficulty(difficulty).Title()
	}

	var runs []storage.RunEntry
	if flagRecent {
		runs, err = store.RecentRuns(flagScoresLimit)
		title = "most recent"
	} else {
		runs, err = store.TopRuns(difficulty, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'plane play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Tier", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----", "----")

	// Print runs
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Level, r.Difficulty,
			r.Duration.Round(100*time.Millisecond).String(),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Per-tier summary
	if stats, err := store.AllStats(); err == nil && len(stats) > 0 {
		fmt.Println()
		for _, d := range config.Difficulties() {
			st, ok := stats[string(d)]
			if !ok {
				continue
			}
			fmt.Printf("  %-6s  %d runs, best %d, avg %.1f\n", d.Title(), st.RunsCount, st.BestScore, st.AvgScore)
		}
	}

	// Show high score
	fmt.Println()
	if best, ok, err := store.LoadHighScore(); err == nil && ok {
		fmt.Printf("High score: %d\n", best)
	}
}
