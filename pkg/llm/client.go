package llm

import "context"

// CompletionClient sends one system+user exchange to a chat-completion
// provider and returns the generated text.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}
