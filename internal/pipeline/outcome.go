package pipeline

import "github.com/jonathan/newsroom-agent/internal/facts"

// Status is the result class of a stage attempt.
type Status string

// Stage outcome statuses. Skipped only ever applies to Draft or Edit, and
// only when the stage immediately upstream did not succeed.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// StageOutcome is the uniform result of any stage attempt. Failures are data
// here, never propagated Go errors: the caller always receives an outcome it
// can render.
type StageOutcome struct {
	Status          Status       `json:"status"`
	Message         string       `json:"message"`
	Payload         string       `json:"payload"`
	ModelUsed       string       `json:"llm_used,omitempty"`
	WordCount       int          `json:"word_count,omitempty"`
	TargetWordCount int          `json:"target_word_count,omitempty"`
	Facts           []facts.Fact `json:"facts,omitempty"`
}

// Result aggregates the three stage outcomes of one pipeline invocation.
// Constructed fresh per run; the pipeline retains no reference afterwards.
type Result struct {
	Research StageOutcome `json:"research_stage"`
	Draft    StageOutcome `json:"draft_stage"`
	Edit     StageOutcome `json:"final_stage"`
}

// errorOutcome builds an error-status outcome with a display message and the
// stage's placeholder payload.
func errorOutcome(message, payload string) StageOutcome {
	return StageOutcome{Status: StatusError, Message: message, Payload: payload}
}

// skippedOutcome builds the outcome for a stage not attempted because its
// upstream dependency did not succeed.
func skippedOutcome(message, payload string) StageOutcome {
	return StageOutcome{Status: StatusSkipped, Message: message, Payload: payload}
}
