package discord

import (
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/MajidAli2/novamind/internal/llm"
	"github.com/MajidAli2/novamind/internal/session"
	"github.com/MajidAli2/novamind/internal/store"
)

// Bot binds one assistant session per channel. Plain messages go to the
// channel's active assistant; !commands manage profiles.
type Bot struct {
	session  *discordgo.Session
	profiles *store.ProfileStore
	logs     *store.ConversationStore
	client   llm.Client

	mu       sync.Mutex
	sessions map[string]*session.Session // channel ID -> active session
}

func NewBot(token string, profiles *store.ProfileStore, logs *store.ConversationStore, client llm.Client) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	bot := &Bot{
		session:  s,
		profiles: profiles,
		logs:     logs,
		client:   client,
		sessions: make(map[string]*session.Session),
	}
	s.AddHandler(bot.onMessage)
	s.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("opening Discord connection: %w", err)
	}

	log.Printf("Discord bot connected as %s", s.State.User.Username)
	return bot, nil
}

func (b *Bot) Close() {
	b.session.Close()
}
