// lander is an ASCII lunar lander for the terminal.
//
// Usage:
//
//	lander play              - Fly the lander
//	lander scores            - Show the best recorded runs
//	lander serve             - Start SSH server for remote play
//	lander config            - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>    - Set render tick rate (default: 60)
//	--seed <value>  - Set RNG seed for fuel pickup placement
//	--db <path>     - Set database path (default: ~/.lander/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - land on the moon in your terminal",
	Long: `Lunar Lander is an ASCII lander game. Burn fuel to slow your descent,
drift onto a landing pad and touch down gently. Pads marked X2 and X4
multiply the score.

Available commands:
  play     - Fly the lander
  scores   - View the best recorded runs
  serve    - Start SSH server for remote play
  config   - Print the default tuning file

Examples:
  lander play
  lander play --difficulty hard
  lander scores
  lander serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
