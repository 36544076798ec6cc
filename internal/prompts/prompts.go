// Package prompts builds stage-specific instruction text for the research,
// draft, and edit stages, scaled to the requested article length.
package prompts

import "fmt"

// Verbosity tier thresholds, in target words. These are policy constants
// carried over from production tuning, not derived values.
const (
	blurbThreshold       = 150
	conciseThreshold     = 200
	fullResearchBoundary = 500
)

// EditorPersona is the system instruction sent with every edit request.
const EditorPersona = "You are an experienced newspaper editor with expertise " +
	"in polishing journalistic content."

// conciseInstruction is appended to draft/edit prompts for short targets.
const conciseInstruction = "CRITICAL: VERY CONCISE. NO FLUFF. Every sentence must earn its place."

// Research returns the research prompt for a topic. The fact-count request
// scales with the target length, and the FACT/SOURCE line format it demands
// is the contract the facts package parses.
func Research(topic string, targetWords int) string {
	var factInstruction string
	switch {
	case targetWords < blurbThreshold:
		factInstruction = "Provide at most 3 facts. Very brief. One line per fact."
	case targetWords <= fullResearchBoundary:
		factInstruction = "Provide 5-7 facts. Concise."
	default:
		factInstruction = "Provide 10-15 facts (full research)."
	}

	return fmt.Sprintf(`Research the topic: %q

%s

For each finding, use this exact format on its own line:
FACT: <the finding or statistic> | SOURCE: <source name, study, or citation>

Example:
FACT: Global temperatures have risen 1.1C since pre-industrial. | SOURCE: IPCC
FACT: Renewable energy reached 30%% of global electricity in 2024. | SOURCE: IEA

Do not exceed the facts requested. Keep it concise for a %d-word article.`,
		topic, factInstruction, targetWords)
}

// Draft returns the drafting prompt. Blurb-length targets get an
// exact-length brief with no article scaffolding; short targets get the
// concise instruction; everything else asks for full journalistic structure.
func Draft(topic, researchText string, targetWords int) string {
	if targetWords < blurbThreshold {
		return fmt.Sprintf(`Based on this research, write a VERY BRIEF news blurb of exactly %d words about %q.

Research Data:
%s

Requirements:
- Write a VERY BRIEF news blurb of exactly %d words.
- Just 2-3 key points. No introduction or conclusion needed.
- One short paragraph is fine. Be direct.
- Use FACT: ... | SOURCE: ... lines only as background; write the blurb in normal prose.`,
			targetWords, topic, researchText, targetWords)
	}

	concise := ""
	if targetWords < conciseThreshold {
		concise = "\n" + conciseInstruction + "\n"
	}
	return fmt.Sprintf(`Based on the research below, write a compelling newspaper article about %q.
%s
Research Data:
%s

Requirements:
- Write in a professional journalistic style
- Include a compelling headline
- Structure with clear paragraphs
- Include relevant facts and context
- Maintain objectivity and accuracy
- Target length: approximately %d words (strict limit)
- Use proper news article formatting

Provide the complete article draft. Do not exceed %d words.`,
		topic, concise, researchText, targetWords, targetWords)
}

// Edit returns the editorial prompt for a draft. The fixed editor persona is
// sent separately as a system instruction (EditorPersona), so this is the
// user-visible half of the two-part instruction.
func Edit(topic, draftText string, targetWords int) string {
	concise := ""
	if targetWords < conciseThreshold {
		concise = " " + conciseInstruction + " Do not add length."
	}
	return fmt.Sprintf(`As an experienced editor, review and polish the following article about %q.%s

%s

Please:
1. Improve clarity and flow
2. Enhance readability and engagement
3. Ensure proper grammar and style
4. Optimize the headline for impact
5. Add compelling subheadings if needed (only if length allows)
6. Maintain journalistic integrity
7. Ensure the article is publication-ready

Provide the final polished version. Keep the length to ~%d words max.`,
		topic, concise, draftText, targetWords)
}
