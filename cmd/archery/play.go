package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
	"github.com/rafaelantao/tui-archery/internal/platform/tui"
	"github.com/rafaelantao/tui-archery/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Shoot a round",
	Long: `Start shooting at the range directly, skipping the menu.

Controls:
  A/D or Left/Right - Aim left/right
  W/S or Up/Down    - Aim up/down
  Space             - Draw the bow; press again to release
  R                 - Reload when the quiver is empty
  1/2/3             - Switch difficulty (easy/normal/hard)
  Q/Ctrl+C          - Quit

Examples:
  archery play
  archery play --difficulty hard
  archery play --config ./my-range.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty tier: easy, normal, hard")
}

// loadGameConfig loads and validates the game config, applying global flag
// overrides shared by play, menu and serve.
func loadGameConfig() config.ArcheryConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg
}

// detectRuntime builds the runtime config from the terminal size, falling
// back to the configured dimensions.
func detectRuntime(cfg config.ArcheryConfig) core.RuntimeConfig {
	width, height := cfg.Display.Width, cfg.Display.Height
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
	}
}

// openStore opens the scores database, returning nil on failure so play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()

	difficulty := cfg.Difficulty.Default
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	rt := detectRuntime(cfg)
	store := openStore()

	runErr := tui.Run(cfg, store, rt, difficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
