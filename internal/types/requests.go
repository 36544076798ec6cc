// Package types provides the request types accepted by the newsroom agent's
// HTTP API, with validation.
package types

import "github.com/go-playground/validator/v10"

// GenerateRequest asks for a full pipeline run on a topic. MaxLength is the
// word-count target; zero means "use the configured default".
type GenerateRequest struct {
	Topic     string `json:"topic" validate:"required,min=1"`
	MaxLength int    `json:"max_length,omitempty" validate:"gte=0"`
}

// RegenerateResearchRequest reruns only the research stage.
type RegenerateResearchRequest struct {
	Topic     string `json:"topic" validate:"required,min=1"`
	MaxLength int    `json:"max_length,omitempty" validate:"gte=0"`
}

// RegenerateDraftRequest reruns only the draft stage against previously
// produced research text.
type RegenerateDraftRequest struct {
	Topic        string `json:"topic" validate:"required,min=1"`
	ResearchData string `json:"research_data" validate:"required,min=1"`
	MaxLength    int    `json:"max_length,omitempty" validate:"gte=0"`
}

// RegenerateEditRequest reruns only the edit stage against previously
// produced draft text. The word-count target is derived from the draft, so
// none is accepted here.
type RegenerateEditRequest struct {
	Topic        string `json:"topic" validate:"required,min=1"`
	DraftContent string `json:"draft_content" validate:"required,min=1"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegenerateResearchRequest using the validator.
func (r *RegenerateResearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegenerateDraftRequest using the validator.
func (r *RegenerateDraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegenerateEditRequest using the validator.
func (r *RegenerateEditRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
