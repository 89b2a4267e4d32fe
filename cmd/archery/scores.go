package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/storage"
)

var flagScoresDifficulty string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 round scores for a difficulty tier.

Examples:
  archery scores
  archery scores --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "easy", "Difficulty tier: easy, normal, hard")
}

func runScores(cmd *cobra.Command, args []string) {
	difficulty, err := config.ParseDifficulty(flagScoresDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.TopRounds(string(difficulty), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'archery play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Shots", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range rounds {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Shots, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(string(difficulty)); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
