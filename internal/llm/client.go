// Package llm provides a text-completion client abstraction over the hosted
// model providers used by the article pipeline.
package llm

import (
	"context"
	"strings"
)

// Request carries one completion call: the prompt, an optional system
// instruction, and sampling parameters. A zero MaxTokens leaves the
// provider's default cap in place.
type Request struct {
	Prompt      string
	System      string
	Temperature float32
	MaxTokens   int
}

// Completer is the capability the pipeline depends on: send a prompt to a
// text-completion service and get generated text or an error back. The
// pipeline never sees provider identity beyond this interface.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// IsModelNotFound reports whether a provider error indicates the requested
// model identifier is unavailable, the one condition the edit stage retries
// against its fallback model.
func IsModelNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "404")
}
