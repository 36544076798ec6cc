package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsroom-agent/internal/config"
	"github.com/jonathan/newsroom-agent/internal/llm"
)

// stubCompleter is a canned Completer for pipeline tests. It records the
// requests it receives and returns a fixed reply or error.
type stubCompleter struct {
	reply    string
	err      error
	requests []llm.Request
}

func (s *stubCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testConfig() *config.Config {
	return &config.Config{
		ResearchModel:     "deepseek-chat",
		DraftModel:        "gpt-4-turbo-preview",
		EditModel:         "gemini-2.0-flash",
		EditFallbackModel: "gemini-1.5-flash-latest",
		DefaultMaxLength:  1000,
	}
}

const researchReply = "FACT: Global temps rose 1.1C. | SOURCE: IPCC\n" +
	"FACT: Renewables at 30%. | SOURCE: IEA"

func TestResearchStage_Success(t *testing.T) {
	research := &stubCompleter{reply: researchReply}
	p := NewWithCompleters(testConfig(), research, nil, nil, nil)

	got := p.ResearchStage(context.Background(), "climate change", 500)

	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, researchReply, got.Payload)
	assert.Equal(t, "deepseek-chat", got.ModelUsed)
	require.Len(t, got.Facts, 2)
	assert.Equal(t, "Global temps rose 1.1C.", got.Facts[0].Fact)
	assert.Equal(t, "IPCC", got.Facts[0].Source)

	require.Len(t, research.requests, 1)
	assert.Contains(t, research.requests[0].Prompt, "climate change")
	assert.Equal(t, 2000, research.requests[0].MaxTokens)
}

func TestResearchStage_MissingKey(t *testing.T) {
	p := NewWithCompleters(testConfig(), nil, nil, nil, nil)

	got := p.ResearchStage(context.Background(), "climate change", 500)

	assert.Equal(t, StatusError, got.Status)
	assert.Contains(t, got.Message, "not configured")
	assert.Equal(t, "Research stage unavailable", got.Payload)
}

func TestResearchStage_ProviderError(t *testing.T) {
	research := &stubCompleter{err: errors.New("HTTP 500: upstream exploded")}
	p := NewWithCompleters(testConfig(), research, nil, nil, nil)

	got := p.ResearchStage(context.Background(), "climate change", 500)

	assert.Equal(t, StatusError, got.Status)
	assert.Contains(t, got.Message, "Research failed")
	assert.Contains(t, got.Message, "upstream exploded")
	assert.Empty(t, got.Facts)
}

func TestResearchStage_TimeoutMapsToStableMessage(t *testing.T) {
	research := &stubCompleter{err: context.DeadlineExceeded}
	p := NewWithCompleters(testConfig(), research, nil, nil, nil)

	got := p.ResearchStage(context.Background(), "climate change", 500)

	assert.Equal(t, StatusError, got.Status)
	assert.Contains(t, got.Message, "request timed out")
}

func TestDraftStage_TruncatesAndCounts(t *testing.T) {
	// 12 words over three sentences; target 5 forces sentence truncation.
	draft := &stubCompleter{reply: "One two three four. Five six seven eight. Nine ten eleven twelve."}
	p := NewWithCompleters(testConfig(), nil, draft, nil, nil)

	got := p.DraftStage(context.Background(), "topic", "research text", 5)

	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, "One two three four.", got.Payload)
	assert.Equal(t, 4, got.WordCount)
	assert.Equal(t, 5, got.TargetWordCount)
	assert.Equal(t, "gpt-4-turbo-preview", got.ModelUsed)

	require.Len(t, draft.requests, 1)
	assert.Contains(t, draft.requests[0].Prompt, "research text")
	assert.Equal(t, 50, draft.requests[0].MaxTokens)
}

func TestDraftStage_MissingKey(t *testing.T) {
	p := NewWithCompleters(testConfig(), nil, nil, nil, nil)

	got := p.DraftStage(context.Background(), "topic", "research", 500)

	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, "OpenAI API key not configured", got.Message)
}

func TestEditStage_SendsPersonaAndBudget(t *testing.T) {
	edit := &stubCompleter{reply: "Polished article text."}
	p := NewWithCompleters(testConfig(), nil, nil, edit, nil)

	got := p.EditStage(context.Background(), "topic", "draft body", 500)

	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, "gemini-2.0-flash", got.ModelUsed)
	require.Len(t, edit.requests, 1)
	assert.True(t, strings.HasPrefix(edit.requests[0].System, "You are an experienced newspaper editor"))
	assert.Contains(t, edit.requests[0].Prompt, "draft body")
	assert.Equal(t, 665, edit.requests[0].MaxTokens)
}

func TestEditStage_FallbackOnModelNotFound(t *testing.T) {
	primary := &stubCompleter{err: errors.New("googleapi: 404 model not found")}
	fallback := &stubCompleter{reply: "Polished by the fallback model."}
	p := NewWithCompleters(testConfig(), nil, nil, primary, fallback)

	got := p.EditStage(context.Background(), "topic", "draft body", 500)

	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, "gemini-1.5-flash-latest", got.ModelUsed)
	assert.Equal(t, "Polished by the fallback model.", got.Payload)

	require.Len(t, primary.requests, 1)
	require.Len(t, fallback.requests, 1)
	// The fallback receives the same prompt and token budget.
	assert.Equal(t, primary.requests[0], fallback.requests[0])
}

func TestEditStage_FallbackAlsoFails(t *testing.T) {
	primary := &stubCompleter{err: errors.New("model not found")}
	fallback := &stubCompleter{err: errors.New("HTTP 500: still broken")}
	p := NewWithCompleters(testConfig(), nil, nil, primary, fallback)

	got := p.EditStage(context.Background(), "topic", "draft", 500)

	assert.Equal(t, StatusError, got.Status)
	assert.Contains(t, got.Message, "Editing failed")
	assert.Contains(t, got.Message, "still broken")
	assert.Len(t, fallback.requests, 1)
}

func TestEditStage_NoFallbackForOtherErrors(t *testing.T) {
	primary := &stubCompleter{err: errors.New("HTTP 429: rate limit exceeded")}
	fallback := &stubCompleter{reply: "should not be called"}
	p := NewWithCompleters(testConfig(), nil, nil, primary, fallback)

	got := p.EditStage(context.Background(), "topic", "draft", 500)

	assert.Equal(t, StatusError, got.Status)
	assert.Empty(t, fallback.requests)
}

func TestRun_FullSuccess(t *testing.T) {
	research := &stubCompleter{reply: researchReply}
	draft := &stubCompleter{reply: "Draft body with a handful of words here."}
	edit := &stubCompleter{reply: "Final polished body with a handful of words."}
	p := NewWithCompleters(testConfig(), research, draft, edit, nil)

	got := p.Run(context.Background(), "climate change", 500)

	assert.Equal(t, StatusSuccess, got.Research.Status)
	assert.Equal(t, StatusSuccess, got.Draft.Status)
	assert.Equal(t, StatusSuccess, got.Edit.Status)
	assert.LessOrEqual(t, float64(got.Draft.WordCount), 500*1.2)
	assert.LessOrEqual(t, float64(got.Edit.WordCount), 500*1.2)

	// Draft consumed the research payload; edit consumed the draft payload.
	assert.Contains(t, draft.requests[0].Prompt, researchReply)
	assert.Contains(t, edit.requests[0].Prompt, got.Draft.Payload)
}

func TestRun_ResearchFailureSkipsDownstream(t *testing.T) {
	research := &stubCompleter{err: errors.New("HTTP 503: unavailable")}
	draft := &stubCompleter{reply: "unused"}
	edit := &stubCompleter{reply: "unused"}
	p := NewWithCompleters(testConfig(), research, draft, edit, nil)

	got := p.Run(context.Background(), "climate change", 500)

	assert.Equal(t, StatusError, got.Research.Status)
	assert.Equal(t, StatusSkipped, got.Draft.Status)
	assert.Equal(t, StatusSkipped, got.Edit.Status)
	assert.Equal(t, "Cannot generate draft without research data", got.Draft.Payload)
	assert.Equal(t, "Cannot edit without draft content", got.Edit.Payload)
	assert.Empty(t, draft.requests)
	assert.Empty(t, edit.requests)
}

func TestRun_DraftFailureSkipsEditOnly(t *testing.T) {
	research := &stubCompleter{reply: researchReply}
	draft := &stubCompleter{err: errors.New("HTTP 500")}
	edit := &stubCompleter{reply: "unused"}
	p := NewWithCompleters(testConfig(), research, draft, edit, nil)

	got := p.Run(context.Background(), "climate change", 500)

	assert.Equal(t, StatusSuccess, got.Research.Status)
	assert.Equal(t, StatusError, got.Draft.Status)
	assert.Equal(t, StatusSkipped, got.Edit.Status)
	assert.Equal(t, "Edit stage skipped due to draft failure", got.Edit.Message)
	assert.Empty(t, edit.requests)
}

func TestRun_NoClientsStillReturnsThreeSlots(t *testing.T) {
	p := NewWithCompleters(testConfig(), nil, nil, nil, nil)

	got := p.Run(context.Background(), "climate change", 500)

	assert.Equal(t, StatusError, got.Research.Status)
	assert.Equal(t, StatusSkipped, got.Draft.Status)
	assert.Equal(t, StatusSkipped, got.Edit.Status)
}
