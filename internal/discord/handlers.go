package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/MajidAli2/novamind/internal/llm"
	"github.com/MajidAli2/novamind/internal/session"
)

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore own messages
	if m.Author.ID == s.State.User.ID {
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	if strings.HasPrefix(content, "!") {
		b.handleCommand(s, m, content)
		return
	}

	b.mu.Lock()
	sess := b.sessions[m.ChannelID]
	b.mu.Unlock()
	if sess == nil {
		b.send(s, m.ChannelID, "No assistant selected. Use `!assistants` to list them and `!use <name>` to pick one.")
		return
	}

	s.ChannelTyping(m.ChannelID)

	turn, err := sess.Submit(context.Background(), content)
	if err != nil {
		switch err {
		case session.ErrBusy:
			b.send(s, m.ChannelID, "Still working on the last message. One at a time.")
		case session.ErrEmptyMessage:
			// nothing to do
		default:
			log.Printf("discord: submit: %v", err)
			b.send(s, m.ChannelID, llm.UserMessage(err))
		}
		return
	}

	res := <-turn.Done()
	if res.Err != nil {
		log.Printf("discord: turn for %q: %v", sess.Profile().Name, res.Err)
		b.send(s, m.ChannelID, llm.UserMessage(res.Err))
		return
	}
	b.send(s, m.ChannelID, res.Reply)
}

func (b *Bot) handleCommand(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	cmd, rest, _ := strings.Cut(content, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "!assistants":
		profiles := b.profiles.All()
		if len(profiles) == 0 {
			b.send(s, m.ChannelID, "No assistants yet. Create one with `!create <name> | <purpose> | <your name>`.")
			return
		}
		var sb strings.Builder
		sb.WriteString("Available assistants:\n")
		for _, p := range profiles {
			fmt.Fprintf(&sb, "- **%s** (by %s): %s\n", p.Name, p.Creator, p.Purpose)
		}
		b.send(s, m.ChannelID, sb.String())

	case "!create":
		parts := strings.Split(rest, "|")
		if len(parts) != 3 {
			b.send(s, m.ChannelID, "Usage: `!create <name> | <purpose> | <your name>`")
			return
		}
		p, err := b.profiles.Create(parts[0], parts[1], parts[2])
		if err != nil {
			b.send(s, m.ChannelID, "Cannot create assistant: "+err.Error())
			return
		}
		b.setSession(m.ChannelID, p.Name)
		b.send(s, m.ChannelID, fmt.Sprintf("Created **%s**. It will strictly focus on its defined purpose. You're now chatting with it.", p.Name))

	case "!use":
		if rest == "" {
			b.send(s, m.ChannelID, "Usage: `!use <name>`")
			return
		}
		if ok := b.setSession(m.ChannelID, rest); !ok {
			b.send(s, m.ChannelID, fmt.Sprintf("No assistant named %q.", rest))
			return
		}
		b.send(s, m.ChannelID, fmt.Sprintf("Now chatting with **%s**.", rest))

	case "!ban":
		if rest == "" {
			b.send(s, m.ChannelID, "Usage: `!ban <name>`")
			return
		}
		if _, ok := b.profiles.Get(rest); !ok {
			b.send(s, m.ChannelID, fmt.Sprintf("No assistant named %q.", rest))
			return
		}
		b.profiles.Ban(rest)
		b.dropSessions(rest)
		b.send(s, m.ChannelID, fmt.Sprintf("**%s** has been removed and its name banned.", rest))

	default:
		b.send(s, m.ChannelID, "Commands: `!assistants`, `!create <name> | <purpose> | <your name>`, `!use <name>`, `!ban <name>`")
	}
}

// setSession binds a channel to an assistant, reusing a live session when the
// channel already points at the same profile.
func (b *Bot) setSession(channelID, name string) bool {
	p, ok := b.profiles.Get(name)
	if !ok {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if cur := b.sessions[channelID]; cur != nil && cur.Profile().Name == p.Name {
		return true
	}
	b.sessions[channelID] = session.New(p, b.logs, b.client)
	return true
}

func (b *Bot) dropSessions(profileName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch, sess := range b.sessions {
		if sess.Profile().Name == profileName {
			delete(b.sessions, ch)
		}
	}
}

func (b *Bot) send(s *discordgo.Session, channelID, text string) {
	// Discord has a 2000 char limit; split if needed
	for _, chunk := range splitMessage(text, 2000) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			log.Printf("discord: sending message: %v", err)
		}
	}
}

func splitMessage(s string, maxLen int) []string {
	if len(s) <= maxLen {
		return []string{s}
	}
	var chunks []string
	for len(s) > 0 {
		end := maxLen
		if end > len(s) {
			end = len(s)
		}
		// Try to split at a newline
		if idx := strings.LastIndex(s[:end], "\n"); idx > 0 {
			end = idx + 1
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}
