// Package main provides the entry point for the newsroom agent, an
// automated journalist that researches, drafts, and edits news articles
// through sequential model calls.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsroom_agent",
	Short: "AI newsroom agent",
	Long:  "Newsroom agent generates news articles from a topic by chaining research, drafting, and editorial model calls, served over a REST API or run from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
