package usecase

import (
	"context"

	"tasq/pkg/gemini"
	pkgLog "tasq/pkg/log"
)

// Generator is the hosted-model collaborator: a single fallible text-in /
// text-out call. *gemini.Client satisfies it.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, cfg *gemini.GenerationConfig) (string, error)
}

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator
}

// New creates a new intent UseCase instance. llm may be nil, in which case
// every parse takes the deterministic fallback path.
func New(l pkgLog.Logger, llm Generator) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
	}
}
