// archery is a terminal bow-and-arrow range with a pseudo-3D target view.
//
// Usage:
//
//	archery play              - Shoot a round directly
//	archery menu              - Start menu with settings and bow selection
//	archery serve             - Start SSH server for remote play
//	archery scores            - Show high scores per difficulty
//
// Global flags:
//
//	--fps <rate>      - Override tick rate
//	--db <path>       - Set database path (default: ~/.archery/scores.db)
//	--config <path>   - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "archery",
	Short: "TUI Archery - Shoot arrows at a 3D target in your terminal",
	Long: `TUI Archery is a terminal archery range. Aim with the keyboard, draw
the bow, and land arrows on a ringed target rendered in pseudo-3D.

Available commands:
  play     - Shoot a round directly
  menu     - Start menu with settings and bow selection
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  archery play
  archery play --difficulty hard
  archery menu
  archery serve --ssh :2222
  archery scores --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.archery/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
