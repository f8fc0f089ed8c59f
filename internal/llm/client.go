package llm

import "context"

type Message struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

// Client sends one chat turn to a model provider. The system prompt is
// always the first message on the wire; history follows oldest-first.
type Client interface {
	Chat(ctx context.Context, systemPrompt string, history []Message) (string, error)
}
