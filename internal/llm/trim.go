package llm

// ContextWindow is the number of most recent conversation messages sent to
// the provider alongside the system prompt. The full log is never truncated
// at rest; only the wire context is bounded.
const ContextWindow = 3

// TrimHistory returns the ContextWindow most recent messages, oldest-first.
// The returned slice is a copy, safe to hand to a background worker.
func TrimHistory(messages []Message) []Message {
	start := 0
	if len(messages) > ContextWindow {
		start = len(messages) - ContextWindow
	}
	trimmed := make([]Message, len(messages)-start)
	copy(trimmed, messages[start:])
	return trimmed
}
