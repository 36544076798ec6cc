// Package pipeline orchestrates the three-stage article generation flow:
// Research -> Draft -> Edit. Each stage wraps one external model call and
// reports a StageOutcome; a failed stage causes downstream stages to be
// skipped, and the orchestrator itself never fails.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/facts"
	"github.com/jonathan/newsroom-agent/internal/llm"
	"github.com/jonathan/newsroom-agent/internal/prompts"
	"github.com/jonathan/newsroom-agent/internal/wordcount"
)

const (
	// stageTimeout bounds each external call. Exceeding it is a stage
	// error, not a fatal condition.
	stageTimeout = 60 * time.Second

	// researchTokenCap is the fixed generation budget for the research
	// stage, which is not length-governed the way draft/edit are.
	researchTokenCap = 2000

	researchTemperature = 0.7
	draftTemperature    = 0.7
	editTemperature     = 0.5
)

// Pipeline runs the article generation stages against three completion
// backends. Clients are stateless dispatchers shared across invocations; a
// nil client means the stage's credential was absent and the stage reports a
// configuration error without attempting a call.
type Pipeline struct {
	cfg *config.Config

	research     llm.Completer
	draft        llm.Completer
	edit         llm.Completer
	editFallback llm.Completer
}

// New builds a Pipeline from configuration, constructing a client for each
// backend whose API key is present. Missing keys are not an error: the
// corresponding stage degrades to an error outcome at call time.
func New(ctx context.Context, cfg *config.Config) (*Pipeline, error) {
	p := &Pipeline{cfg: cfg}

	if cfg.DeepSeekAPIKey != "" {
		client, err := llm.NewOpenAIClient(cfg.DeepSeekAPIKey, cfg.ResearchModel, cfg.DeepSeekBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create research client: %w", err)
		}
		p.research = client
	}
	if cfg.OpenAIAPIKey != "" {
		client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.DraftModel, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create draft client: %w", err)
		}
		p.draft = client
	}
	if cfg.GoogleAPIKey != "" {
		edit, err := llm.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.EditModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create edit client: %w", err)
		}
		fallback, err := llm.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.EditFallbackModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create edit fallback client: %w", err)
		}
		p.edit = edit
		p.editFallback = fallback
	}

	return p, nil
}

// NewWithCompleters builds a Pipeline with explicit completion clients.
// Used by tests and anywhere the caller manages client construction.
func NewWithCompleters(cfg *config.Config, research, draft, edit, editFallback llm.Completer) *Pipeline {
	return &Pipeline{
		cfg:          cfg,
		research:     research,
		draft:        draft,
		edit:         edit,
		editFallback: editFallback,
	}
}

// Run executes the full Research -> Draft -> Edit sequence. A stage that
// does not succeed causes every downstream stage to report skipped; the
// returned Result always has all three slots populated.
func (p *Pipeline) Run(ctx context.Context, topic string, maxLength int) Result {
	research := p.ResearchStage(ctx, topic, maxLength)

	var draft StageOutcome
	if research.Status == StatusSuccess {
		draft = p.DraftStage(ctx, topic, research.Payload, maxLength)
	} else {
		draft = skippedOutcome(
			"Draft stage skipped due to research failure",
			"Cannot generate draft without research data",
		)
	}

	var edit StageOutcome
	if draft.Status == StatusSuccess {
		edit = p.EditStage(ctx, topic, draft.Payload, maxLength)
	} else {
		edit = skippedOutcome(
			"Edit stage skipped due to draft failure",
			"Cannot edit without draft content",
		)
	}

	return Result{Research: research, Draft: draft, Edit: edit}
}

// ResearchStage gathers facts about the topic from the research backend.
// The raw text is returned as the payload; the structured fact list is
// derived from it with the facts parser.
func (p *Pipeline) ResearchStage(ctx context.Context, topic string, maxLength int) StageOutcome {
	if p.research == nil {
		log.Printf("Research: DEEPSEEK_API_KEY not configured")
		return errorOutcome("DeepSeek API key not configured", "Research stage unavailable")
	}

	text, err := p.complete(ctx, p.research, llm.Request{
		Prompt:      prompts.Research(topic, maxLength),
		Temperature: researchTemperature,
		MaxTokens:   researchTokenCap,
	})
	if err != nil {
		msg := describeProviderError(err)
		log.Printf("Research stage failed: %s", msg)
		return errorOutcome(
			"Research failed: "+msg,
			"Research stage encountered an error: "+msg,
		)
	}

	return StageOutcome{
		Status:    StatusSuccess,
		Message:   "Research completed successfully",
		Payload:   text,
		ModelUsed: p.cfg.ResearchModel,
		Facts:     facts.Parse(text),
	}
}

// DraftStage writes the article draft from the research text, with a token
// budget and post-call truncation derived from the target length.
func (p *Pipeline) DraftStage(ctx context.Context, topic, researchText string, maxLength int) StageOutcome {
	if p.draft == nil {
		log.Printf("Draft: OPENAI_API_KEY not configured")
		return errorOutcome("OpenAI API key not configured", "Draft stage unavailable")
	}

	text, err := p.complete(ctx, p.draft, llm.Request{
		Prompt:      prompts.Draft(topic, researchText, maxLength),
		Temperature: draftTemperature,
		MaxTokens:   wordcount.TokensFor(maxLength),
	})
	if err != nil {
		msg := describeProviderError(err)
		log.Printf("Draft stage failed: %s", msg)
		return errorOutcome("Draft generation failed: "+msg, "Draft stage encountered an error")
	}

	text = wordcount.Truncate(text, maxLength)
	return StageOutcome{
		Status:          StatusSuccess,
		Message:         "Draft generated successfully",
		Payload:         text,
		ModelUsed:       p.cfg.DraftModel,
		WordCount:       wordcount.Count(text),
		TargetWordCount: maxLength,
	}
}

// EditStage polishes the draft with the editorial backend. If the provider
// rejects the primary model identifier as unavailable, the stage retries
// exactly once against the fallback identifier with the same request; this
// is the only retry in the system.
func (p *Pipeline) EditStage(ctx context.Context, topic, draftText string, maxLength int) StageOutcome {
	if p.edit == nil {
		log.Printf("Edit: GOOGLE_API_KEY not configured")
		return errorOutcome("Google Gemini API key not configured", "Edit stage unavailable")
	}

	req := llm.Request{
		Prompt:      prompts.Edit(topic, draftText, maxLength),
		System:      prompts.EditorPersona,
		Temperature: editTemperature,
		MaxTokens:   wordcount.TokensFor(maxLength),
	}

	modelUsed := p.cfg.EditModel
	text, err := p.complete(ctx, p.edit, req)
	if err != nil && llm.IsModelNotFound(err) && p.editFallback != nil {
		log.Printf("Edit: %s unavailable, trying fallback %s", p.cfg.EditModel, p.cfg.EditFallbackModel)
		modelUsed = p.cfg.EditFallbackModel
		text, err = p.complete(ctx, p.editFallback, req)
	}
	if err != nil {
		msg := describeProviderError(err)
		log.Printf("Edit stage failed: %s", msg)
		return errorOutcome("Editing failed: "+msg, "Edit stage encountered an error")
	}

	text = wordcount.Truncate(text, maxLength)
	return StageOutcome{
		Status:          StatusSuccess,
		Message:         "Article polished successfully",
		Payload:         text,
		ModelUsed:       modelUsed,
		WordCount:       wordcount.Count(text),
		TargetWordCount: maxLength,
	}
}

// complete issues one completion call under the per-stage timeout.
func (p *Pipeline) complete(ctx context.Context, client llm.Completer, req llm.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return client.Complete(ctx, req)
}

// describeProviderError maps a provider failure to display text, folding
// timeouts into a stable message.
func describeProviderError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error occurred"
}
