// Package facts parses the research stage's semi-structured output into
// fact/source pairs.
package facts

import "strings"

const (
	factMarker   = "FACT:"
	sourceMarker = "SOURCE:"

	// DefaultSource labels freeform lines that did not follow the
	// FACT/SOURCE format the research prompt asks for.
	DefaultSource = "Research Service"
)

// Fact is one unit of research content: a finding and where it came from.
type Fact struct {
	Fact   string `json:"fact"`
	Source string `json:"source"`
}

// Parse extracts facts from research output line by line. Lines following
// the requested "FACT: ... | SOURCE: ..." format become structured pairs.
// Blank lines and #-comments are skipped. Any other non-blank line is kept
// as a fact attributed to DefaultSource, so freeform provider output is
// preserved rather than dropped. Order of appearance is preserved.
func Parse(text string) []Fact {
	facts := []Fact{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, factMarker) && strings.Contains(line, "|") && strings.Contains(line, sourceMarker) {
			factPart, sourcePart, _ := strings.Cut(line, "|")
			fact := strings.TrimSpace(strings.Replace(factPart, factMarker, "", 1))
			source := strings.TrimSpace(strings.Replace(sourcePart, sourceMarker, "", 1))
			if fact != "" && source != "" {
				facts = append(facts, Fact{Fact: fact, Source: source})
			}
			continue
		}
		facts = append(facts, Fact{Fact: line, Source: DefaultSource})
	}
	return facts
}
