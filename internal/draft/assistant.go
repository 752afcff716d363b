package draft

import (
	"context"
	"strings"

	"github.com/ManahilHabibb/DraftAI/internal/log"
)

// GenerateMaxTokens is sent with every generation request.
const GenerateMaxTokens = 150

// Generator is the text generation service as the assistant sees it.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Assistant requests generated text for merging into the content buffer.
// Overlapping calls are permitted; each completes independently and results
// are merged in the order their responses arrive.
type Assistant struct {
	gen Generator
}

// NewAssistant returns an assistant backed by gen.
func NewAssistant(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Generate issues a single generation request for prompt. An empty or
// whitespace-only prompt returns ValidationError with no network call.
// Service failure returns GenerationError so the caller leaves the content
// buffer and prompt field unchanged for a retry.
func (a *Assistant) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &ValidationError{Reason: "Enter a prompt before generating."}
	}

	text, err := a.gen.GenerateText(ctx, prompt, GenerateMaxTokens)
	if err != nil {
		log.Error(log.CatAI, "generation failed", "error", err)
		return "", &GenerationError{Cause: err}
	}
	log.Debug(log.CatAI, "generation succeeded", "chars", len(text))
	return text, nil
}

// MergeGenerated appends generated text to existing content, separated by
// exactly one blank line. Prior content is preserved verbatim; empty
// existing content takes the generated text without a leading separator.
func MergeGenerated(existing, generated string) string {
	if existing == "" {
		return generated
	}
	return existing + "\n\n" + generated
}
