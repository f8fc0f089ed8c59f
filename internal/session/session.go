package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/MajidAli2/novamind/internal/llm"
	"github.com/MajidAli2/novamind/internal/store"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy means a previous turn for this assistant has not resolved yet.
	// At most one request may be in flight per profile.
	ErrBusy = errors.New("a response is already in progress")
)

// Result is the outcome of one turn. On failure Reply is empty and no
// assistant message has been appended to the log.
type Result struct {
	Reply string
	Err   error
}

// Turn is the handle for an in-flight turn: a single-consumer completion
// channel plus cancellation.
type Turn struct {
	done   chan Result
	cancel context.CancelFunc
}

func (t *Turn) Done() <-chan Result { return t.done }

func (t *Turn) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Session orchestrates conversation turns for one assistant profile. It is a
// two-state machine: Idle, and AwaitingResponse while the gateway call runs.
// Submissions while awaiting are rejected rather than queued.
type Session struct {
	profile store.Profile
	logs    *store.ConversationStore
	client  llm.Client

	mu      sync.Mutex
	busy    bool
	history []llm.Message
}

// New opens a session for profile, loading its persisted conversation log.
func New(profile store.Profile, logs *store.ConversationStore, client llm.Client) *Session {
	return &Session{
		profile: profile,
		logs:    logs,
		client:  client,
		history: logs.Load(profile.Name),
	}
}

func (s *Session) Profile() store.Profile { return s.profile }

// Busy reports whether a turn is currently awaiting a response.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// History returns a copy of the in-memory conversation log.
func (s *Session) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Submit starts one turn. Empty input and overlapping submissions are
// rejected. A bare greeting is answered deterministically without touching
// the gateway; everything else runs on a background goroutine, and the
// returned Turn delivers the outcome.
//
// On success the sanitized reply is appended and the log persisted. On
// failure nothing is appended; the user message stays in memory only.
func (s *Session) Submit(ctx context.Context, text string) (*Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.history = append(s.history, llm.Message{Role: "user", Content: text})

	if isGreeting(text) {
		reply := llm.Sanitize(s.greeting())
		s.history = append(s.history, llm.Message{Role: "assistant", Content: reply})
		snapshot := make([]llm.Message, len(s.history))
		copy(snapshot, s.history)
		s.busy = false
		s.mu.Unlock()

		if err := s.logs.Save(s.profile.Name, snapshot); err != nil {
			log.Printf("session: saving conversation for %q: %v", s.profile.Name, err)
		}
		turn := &Turn{done: make(chan Result, 1)}
		turn.done <- Result{Reply: reply}
		return turn, nil
	}

	trimmed := llm.TrimHistory(s.history)
	s.mu.Unlock()

	cctx, cancel := context.WithCancel(ctx)
	turn := &Turn{done: make(chan Result, 1), cancel: cancel}
	go s.run(cctx, turn, trimmed)
	return turn, nil
}

func (s *Session) run(ctx context.Context, turn *Turn, trimmed []llm.Message) {
	defer turn.cancel()

	systemPrompt := llm.BuildSystemPrompt(s.profile.Purpose, llm.IsMathPurpose(s.profile.Purpose))
	raw, err := s.client.Chat(ctx, systemPrompt, trimmed)
	if err != nil {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
		turn.done <- Result{Err: err}
		return
	}

	reply := llm.Sanitize(raw)

	s.mu.Lock()
	s.history = append(s.history, llm.Message{Role: "assistant", Content: reply})
	snapshot := make([]llm.Message, len(s.history))
	copy(snapshot, s.history)
	s.busy = false
	s.mu.Unlock()

	if err := s.logs.Save(s.profile.Name, snapshot); err != nil {
		log.Printf("session: saving conversation for %q: %v", s.profile.Name, err)
	}
	turn.done <- Result{Reply: reply}
}

func isGreeting(text string) bool {
	switch strings.ToLower(text) {
	case "hi", "hi!", "hi.":
		return true
	}
	return false
}

func (s *Session) greeting() string {
	purpose := s.profile.Purpose
	if strings.TrimSpace(purpose) == "" {
		purpose = "my defined area"
	}
	return fmt.Sprintf("Hi! I'm %s. I specialize in %s. How can I help you today?", s.profile.Name, purpose)
}
