package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/pipeline"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Run only the research stage for a topic",
	Long:  "Gathers facts about a topic from the research backend and writes the stage outcome, including the parsed fact list, as JSON.",
	RunE:  runResearch,
}

var (
	researchTopic     string
	researchMaxLength int
	researchOutFile   string
)

func init() {
	researchCmd.Flags().StringVarP(&researchTopic, "topic", "t", "", "Article topic (required)")
	researchCmd.Flags().IntVarP(&researchMaxLength, "max-length", "l", 0, "Target word count of the eventual article")
	researchCmd.Flags().StringVarP(&researchOutFile, "out", "o", "", "Path to output outcome JSON file (defaults to stdout)")

	if err := researchCmd.MarkFlagRequired("topic"); err != nil {
		panic(fmt.Sprintf("failed to mark topic flag as required: %v", err))
	}

	rootCmd.AddCommand(researchCmd)
}

func runResearch(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()

	p, err := pipeline.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	outcome := p.ResearchStage(context.Background(), researchTopic, cfg.ClampLength(researchMaxLength))
	return writeResultJSON(outcome, researchOutFile)
}
