package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [easy|normal|hard]",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 runs, optionally for one difficulty.

On a terminal an interactive table opens; use tab to switch difficulty.
Pass --plain (or pipe the output) for a text listing.

Examples:
  lander scores
  lander scores hard --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mode = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && mode == "" && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "all difficulties"
	if mode != "" {
		title = mode
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No landings recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lander play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, entry.Mode, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.Preferences().HighScore(); err == nil && high > 0 {
		fmt.Println()
		fmt.Printf("High score: %d\n", high)
	}
}
