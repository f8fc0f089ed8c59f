package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MajidAli2/novamind/config"
	"github.com/MajidAli2/novamind/internal/discord"
	"github.com/MajidAli2/novamind/internal/llm"
	"github.com/MajidAli2/novamind/internal/scheduler"
	"github.com/MajidAli2/novamind/internal/session"
	"github.com/MajidAli2/novamind/internal/store"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}

	banned := store.LoadBanList(filepath.Join(cfg.DataDir, "banned.json"))
	profiles := store.LoadProfileStore(filepath.Join(cfg.DataDir, "profiles.json"), banned)
	logs := store.NewConversationStore(cfg.DataDir)

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.APIKey(),
		Models:   cfg.Models,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}

	sched := scheduler.New(cfg.DataDir)
	sched.Start(cfg.BackupCron)
	defer sched.Stop()

	// If Discord token is set, run as bot
	if cfg.DiscordToken != "" {
		runBot(cfg, profiles, logs, client)
		return
	}

	// Otherwise, CLI mode
	runCLI(profiles, logs, client)
}

func runBot(cfg *config.Config, profiles *store.ProfileStore, logs *store.ConversationStore, client llm.Client) {
	bot, err := discord.NewBot(cfg.DiscordToken, profiles, logs, client)
	if err != nil {
		log.Fatalf("failed to start Discord bot: %v", err)
	}
	defer bot.Close()

	log.Println("bot is running. Press Ctrl+C to exit.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down.")
}

func runCLI(profiles *store.ProfileStore, logs *store.ConversationStore, client llm.Client) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("NovaMind: create focused AI assistants. Type 'help' for commands.")
	fmt.Print("novamind> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "":
		case "exit", "quit":
			return
		case "help":
			fmt.Println("Commands:")
			fmt.Println("  list                              list assistants")
			fmt.Println("  create <name> | <purpose> | <me>  create an assistant")
			fmt.Println("  chat <name>                       chat with an assistant ('back' to leave)")
			fmt.Println("  ban <name>                        remove an assistant and ban its name")
			fmt.Println("  exit                              quit")
		case "list":
			all := profiles.All()
			if len(all) == 0 {
				fmt.Println("No assistants yet.")
			}
			for _, p := range all {
				kind := ""
				if llm.IsMathPurpose(p.Purpose) {
					kind = " [math]"
				}
				fmt.Printf("  %s%s (by %s): %s\n", p.Name, kind, p.Creator, p.Purpose)
			}
		case "create":
			parts := strings.Split(rest, "|")
			if len(parts) != 3 {
				fmt.Println("Usage: create <name> | <purpose> | <your name>")
				break
			}
			p, err := profiles.Create(parts[0], parts[1], parts[2])
			if err != nil {
				fmt.Println("Cannot create assistant:", err)
				break
			}
			fmt.Printf("Created %s. It will strictly focus on its defined purpose.\n", p.Name)
		case "ban":
			if _, ok := profiles.Get(rest); !ok {
				fmt.Printf("No assistant named %q.\n", rest)
				break
			}
			profiles.Ban(rest)
			fmt.Printf("%s has been removed and its name banned.\n", rest)
		case "chat":
			p, ok := profiles.Get(rest)
			if !ok {
				fmt.Printf("No assistant named %q.\n", rest)
				break
			}
			chatLoop(scanner, session.New(p, logs, client))
		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
		}

		fmt.Print("novamind> ")
	}
}

func chatLoop(scanner *bufio.Scanner, sess *session.Session) {
	name := sess.Profile().Name
	fmt.Printf("Chatting with %s. Type 'back' to return.\n", name)
	fmt.Printf("%s> ", name)

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "back" {
			return
		}

		turn, err := sess.Submit(context.Background(), text)
		if err != nil {
			if err != session.ErrEmptyMessage {
				fmt.Println("error:", err)
			}
			fmt.Printf("%s> ", name)
			continue
		}

		res := <-turn.Done()
		if res.Err != nil {
			fmt.Println(llm.UserMessage(res.Err))
		} else {
			fmt.Println(res.Reply)
		}
		fmt.Printf("%s> ", name)
	}
}
