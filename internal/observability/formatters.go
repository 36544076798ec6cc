// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/newsroom-agent/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFactsToShow is the default number of facts to display
	maxFactsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintOutcome outputs a human-readable summary of one stage outcome.
func (p *Printer) PrintOutcome(stage string, outcome pipeline.StageOutcome) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status:   %s\n", outcome.Status))
	sb.WriteString(fmt.Sprintf("Message:  %s\n", outcome.Message))
	if outcome.ModelUsed != "" {
		sb.WriteString(fmt.Sprintf("Model:    %s\n", outcome.ModelUsed))
	}
	if outcome.Status == pipeline.StatusSuccess && outcome.TargetWordCount > 0 {
		sb.WriteString(fmt.Sprintf("Words:    %d / %d target\n", outcome.WordCount, outcome.TargetWordCount))
	}

	if len(outcome.Facts) > 0 {
		sb.WriteString("\nFacts:\n")
		count := min(len(outcome.Facts), maxFactsToShow)
		for i := 0; i < count; i++ {
			f := outcome.Facts[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", f.Fact, f.Source))
		}
		if len(outcome.Facts) > maxFactsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(outcome.Facts)-maxFactsToShow))
		}
	}

	p.printBox(stage, strings.TrimRight(sb.String(), "\n"))
}

// PrintResult outputs all three stage outcomes of a pipeline run.
func (p *Printer) PrintResult(result pipeline.Result) {
	p.PrintOutcome("Research", result.Research)
	p.PrintOutcome("Draft", result.Draft)
	p.PrintOutcome("Edit", result.Edit)
}
