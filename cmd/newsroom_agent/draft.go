package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/pipeline"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Run only the draft stage from saved research text",
	Long:  "Writes an article draft for a topic from a research text file, applying the length governor to the model output.",
	RunE:  runDraft,
}

var (
	draftTopic        string
	draftResearchFile string
	draftMaxLength    int
	draftOutFile      string
)

func init() {
	draftCmd.Flags().StringVarP(&draftTopic, "topic", "t", "", "Article topic (required)")
	draftCmd.Flags().StringVarP(&draftResearchFile, "research", "r", "", "Path to research text file (required)")
	draftCmd.Flags().IntVarP(&draftMaxLength, "max-length", "l", 0, "Target word count")
	draftCmd.Flags().StringVarP(&draftOutFile, "out", "o", "", "Path to output outcome JSON file (defaults to stdout)")

	if err := draftCmd.MarkFlagRequired("topic"); err != nil {
		panic(fmt.Sprintf("failed to mark topic flag as required: %v", err))
	}
	if err := draftCmd.MarkFlagRequired("research"); err != nil {
		panic(fmt.Sprintf("failed to mark research flag as required: %v", err))
	}

	rootCmd.AddCommand(draftCmd)
}

func runDraft(_ *cobra.Command, _ []string) error {
	researchText, err := os.ReadFile(draftResearchFile)
	if err != nil {
		return fmt.Errorf("failed to read research file: %w", err)
	}

	cfg := config.FromEnv()
	p, err := pipeline.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	outcome := p.DraftStage(context.Background(), draftTopic, string(researchText), cfg.ClampLength(draftMaxLength))
	return writeResultJSON(outcome, draftOutFile)
}
