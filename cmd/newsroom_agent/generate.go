package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/observability"
	"github.com/jonathan/newsroom-agent/internal/pipeline"
	"github.com/jonathan/newsroom-agent/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full research, draft, and edit pipeline for a topic",
	Long:  "Runs all three stages in sequence and writes the aggregated result as JSON. Stages that fail are reported in the result; downstream stages are skipped rather than attempted.",
	RunE:  runGenerate,
}

var (
	generateTopic     string
	generateMaxLength int
	generateOutFile   string
	generateHTMLFile  string
	generateVerbose   bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "Article topic (required)")
	generateCmd.Flags().IntVarP(&generateMaxLength, "max-length", "l", 0, "Target word count (defaults to DEFAULT_MAX_LENGTH)")
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "", "Path to output result JSON file (defaults to stdout)")
	generateCmd.Flags().StringVar(&generateHTMLFile, "html", "", "Also write the polished article as HTML to this path")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print stage summaries while running")

	if err := generateCmd.MarkFlagRequired("topic"); err != nil {
		panic(fmt.Sprintf("failed to mark topic flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	maxLength := cfg.ClampLength(generateMaxLength)

	p, err := pipeline.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	result := p.Run(context.Background(), generateTopic, maxLength)

	if generateVerbose {
		observability.NewPrinter(os.Stdout).PrintResult(result)
	}

	if err := writeResultJSON(result, generateOutFile); err != nil {
		return err
	}

	if generateHTMLFile != "" {
		if result.Edit.Status != pipeline.StatusSuccess {
			return fmt.Errorf("cannot write HTML: edit stage status is %s", result.Edit.Status)
		}
		article, err := render.FromMarkdown(result.Edit.Payload)
		if err != nil {
			return fmt.Errorf("failed to render article: %w", err)
		}
		if err := os.WriteFile(generateHTMLFile, []byte(article.HTML), 0644); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
	}

	return nil
}

// writeResultJSON marshals any stage or pipeline result with indentation and
// writes it to path, or stdout when path is empty.
func writeResultJSON(result any, path string) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
