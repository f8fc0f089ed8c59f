package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/MajidAli2/novamind/internal/llm"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// ConversationStore persists one append-only message log per assistant,
// keyed by a filesystem-safe transform of the profile name. Logs are never
// truncated at rest; only the in-memory context window sent to the provider
// is bounded.
type ConversationStore struct {
	dir string
}

func NewConversationStore(dir string) *ConversationStore {
	return &ConversationStore{dir: dir}
}

// LogPath returns the on-disk location of a profile's conversation log.
func (c *ConversationStore) LogPath(profileName string) string {
	safe := unsafeNameChars.ReplaceAllString(profileName, "_")
	return filepath.Join(c.dir, safe+"_chat.json")
}

// Load reads a profile's log. A missing or malformed file yields an empty
// history, logged but never surfaced.
func (c *ConversationStore) Load(profileName string) []llm.Message {
	path := c.LogPath(profileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: reading conversation %s: %v", path, err)
		}
		return nil
	}

	var messages []llm.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		log.Printf("store: parsing conversation %s: %v (starting empty)", path, err)
		return nil
	}
	return messages
}

// Save writes the full log, replacing the file.
func (c *ConversationStore) Save(profileName string, messages []llm.Message) error {
	if messages == nil {
		messages = []llm.Message{}
	}
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.LogPath(profileName), data, 0644)
}
