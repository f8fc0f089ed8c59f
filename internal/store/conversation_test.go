package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MajidAli2/novamind/internal/llm"
)

func TestConversationStore_LogPathSanitizesName(t *testing.T) {
	c := NewConversationStore("/data")
	cases := map[string]string{
		"JavaHelper":    "JavaHelper_chat.json",
		"My Bot!":       "My_Bot__chat.json",
		"a/b\\c":        "a_b_c_chat.json",
		"math-tutor_42": "math-tutor_42_chat.json",
	}
	for name, wantBase := range cases {
		got := c.LogPath(name)
		if filepath.Base(got) != wantBase {
			t.Errorf("LogPath(%q) = %q, want base %q", name, got, wantBase)
		}
		if !strings.HasPrefix(got, "/data") {
			t.Errorf("LogPath(%q) = %q, expected it under the store dir", name, got)
		}
	}
}

func TestConversationStore_SaveLoadRoundTrip(t *testing.T) {
	c := NewConversationStore(t.TempDir())
	msgs := []llm.Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}
	if err := c.Save("Bot", msgs); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := c.Load("Bot")
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0] != msgs[0] || got[1] != msgs[1] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestConversationStore_MissingLogIsEmpty(t *testing.T) {
	c := NewConversationStore(t.TempDir())
	if got := c.Load("NeverSeen"); len(got) != 0 {
		t.Errorf("expected empty history, got %+v", got)
	}
}

func TestConversationStore_MalformedLogIsEmpty(t *testing.T) {
	c := NewConversationStore(t.TempDir())
	if err := os.WriteFile(c.LogPath("Bot"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := c.Load("Bot"); len(got) != 0 {
		t.Errorf("expected empty history for malformed log, got %+v", got)
	}
}

func TestConversationStore_SaveNilWritesEmptyArray(t *testing.T) {
	c := NewConversationStore(t.TempDir())
	if err := c.Save("Bot", nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(c.LogPath("Bot"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty JSON array, got %q", data)
	}
}
