package discord

import (
	"strings"
	"testing"
)

func TestSplitMessage_ShortPassesThrough(t *testing.T) {
	chunks := splitMessage("hello", 2000)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("expected single chunk, got %v", chunks)
	}
}

func TestSplitMessage_SplitsAtNewlines(t *testing.T) {
	text := strings.Repeat("line one\n", 5)
	chunks := splitMessage(text, 20)

	for i, c := range chunks {
		if len(c) > 20 {
			t.Errorf("chunk %d exceeds the limit: %d chars", i, len(c))
		}
	}
	if strings.Join(chunks, "") != text {
		t.Error("chunks do not reassemble into the original text")
	}
}

func TestSplitMessage_HardSplitWithoutNewlines(t *testing.T) {
	text := strings.Repeat("a", 45)
	chunks := splitMessage(text, 20)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if strings.Join(chunks, "") != text {
		t.Error("chunks do not reassemble into the original text")
	}
}
