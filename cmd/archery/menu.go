package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafaelantao/tui-archery/internal/platform/tui"
	"github.com/rafaelantao/tui-archery/internal/settings"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive start menu",
	Long: `Open the start menu to pick a difficulty, choose a bow, and toggle
music and sound preferences before shooting. Preferences are saved to
~/.archery/settings.json.

Examples:
  archery menu`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()
	rt := detectRuntime(cfg)
	store := openStore()

	err := tui.RunSession(cfg, store, rt, settings.DefaultPath())

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
