package llm

import "context"

// ChatModel is a minimal abstraction over the generative model used for
// schedule and email generation. It hides the concrete provider so the
// oracle can be swapped without touching callers.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
