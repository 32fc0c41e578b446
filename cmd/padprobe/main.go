// padprobe is a terminal utility for checking directional input handling,
// bundled with a side-scrolling shooter that exercises every input channel.
//
// Usage:
//
//	padprobe play      - Fly the test shooter
//	padprobe probe     - Start in the raw input probe view
//	padprobe scores    - Show best recorded runs
//	padprobe serve     - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.padprobe/runs.db)
//	--config <path>   - Path to a tuning YAML file
//	--width <px>      - Override the simulated playfield width
//	--height <px>     - Override the simulated playfield height
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
	flagConfig string
	flagWidth  float64
	flagHeight float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "padprobe",
	Short: "padprobe - Input diagnostics with a playable test bench",
	Long: `padprobe checks how your terminal delivers directional input by
translating key events into normalized movement intents, and gives you a
small side-scrolling shooter to exercise them against.

Available commands:
  play     - Fly the test shooter
  probe    - Start in the raw input probe view
  scores   - Show best recorded runs
  serve    - Start SSH server for remote sessions

Examples:
  padprobe play
  padprobe play --seed 42
  padprobe probe
  padprobe scores
  padprobe serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.padprobe/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML file")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 0, "Playfield width in pixels (0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 0, "Playfield height in pixels (0 = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
