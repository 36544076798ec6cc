package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/pipeline"
	"github.com/jonathan/newsroom-agent/internal/wordcount"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Run only the edit stage on a saved draft",
	Long:  "Polishes a draft article file with the editorial backend. The word-count target is derived from the draft itself.",
	RunE:  runEdit,
}

var (
	editTopic     string
	editDraftFile string
	editOutFile   string
)

func init() {
	editCmd.Flags().StringVarP(&editTopic, "topic", "t", "", "Article topic (required)")
	editCmd.Flags().StringVarP(&editDraftFile, "draft", "d", "", "Path to draft text file (required)")
	editCmd.Flags().StringVarP(&editOutFile, "out", "o", "", "Path to output outcome JSON file (defaults to stdout)")

	if err := editCmd.MarkFlagRequired("topic"); err != nil {
		panic(fmt.Sprintf("failed to mark topic flag as required: %v", err))
	}
	if err := editCmd.MarkFlagRequired("draft"); err != nil {
		panic(fmt.Sprintf("failed to mark draft flag as required: %v", err))
	}

	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	draftText, err := os.ReadFile(editDraftFile)
	if err != nil {
		return fmt.Errorf("failed to read draft file: %w", err)
	}

	cfg := config.FromEnv()
	p, err := pipeline.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	maxLength := wordcount.Count(string(draftText))
	if maxLength < 100 {
		maxLength = 100
	}

	outcome := p.EditStage(context.Background(), editTopic, string(draftText), maxLength)
	return writeResultJSON(outcome, editOutFile)
}
