// Package discord is the thin glue between the chat platform and the core
// services. Handlers resolve ids from the interaction, invoke one or more
// service operations, and render the result; no domain logic lives here.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/unseeyou/everything-bot/internal/catalog"
	"github.com/unseeyou/everything-bot/internal/cooldown"
	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/economy"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/pet"
	"github.com/unseeyou/everything-bot/internal/progression"
)

// CommandHandler handles one slash command interaction.
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate)

// Config holds the bot's identity and its service dependencies.
type Config struct {
	Token string
	AppID string

	Economy     economy.Service
	Pets        pet.Service
	Progression progression.Service
	Cooldowns   *cooldown.Tracker
	Shop        *catalog.Catalog
	Jobs        []domain.Job
}

// Bot owns the gateway session and the command registry.
type Bot struct {
	session     *discordgo.Session
	appID       string
	economy     economy.Service
	pets        pet.Service
	progression progression.Service
	cooldowns   *cooldown.Tracker
	shop        *catalog.Catalog
	jobs        []domain.Job

	handlers    map[string]CommandHandler
	definitions []*discordgo.ApplicationCommand
}

// New creates a Bot and registers all commands. A missing token or app id is
// rejected here rather than surfacing later as a gateway failure.
func New(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord token is required")
	}
	if cfg.AppID == "" {
		return nil, errors.New("discord application id is required")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{
		session:     session,
		appID:       cfg.AppID,
		economy:     cfg.Economy,
		pets:        cfg.Pets,
		progression: cfg.Progression,
		cooldowns:   cfg.Cooldowns,
		shop:        cfg.Shop,
		jobs:        cfg.Jobs,
		handlers:    make(map[string]CommandHandler),
	}

	b.register(b.bankCommand())
	b.register(b.shopCommand())
	b.register(b.inventoryCommand())
	b.register(b.jobCommand())
	b.register(b.crimeCommand())
	b.register(b.petCommand())
	b.register(b.levelsCommand())

	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessage)

	return b, nil
}

func (b *Bot) register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	b.definitions = append(b.definitions, cmd)
	b.handlers[cmd.Name] = handler
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	for _, cmd := range b.definitions {
		if _, err := b.session.ApplicationCommandCreate(b.appID, "", cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}

	slog.Info("Discord bot ready", "commands", len(b.definitions))
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	handler, ok := b.handlers[name]
	if !ok {
		return
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	logger.FromContext(ctx).Info("Command invoked", "command", name, "user_id", interactionUserID(i))
	handler(ctx, s, i)
}

// onMessage grants the per-message XP and announces level-ups.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ctx := context.Background()
	result, err := b.progression.AwardMessageXP(ctx, m.Author.ID, m.GuildID)
	if err != nil {
		slog.Error("Failed to award message XP", "error", err, "user_id", m.Author.ID)
		return
	}
	if result.LeveledUp {
		msg := fmt.Sprintf("🎉 Congrats on the rankup, %s! You are now level %d.", m.Author.Username, result.NewLevel)
		if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
			slog.Error("Failed to announce level-up", "error", err)
		}
	}
}
