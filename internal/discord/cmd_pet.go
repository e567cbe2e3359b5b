package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) petCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pet",
		Description: "Care for your pets",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show the pets you own",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "select",
				Description: "Choose which pet you are caring for",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Pet name",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Check on your selected pet",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "feed",
				Description: "Feed your selected pet (uses one Pet food)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "play",
				Description: "Play with your selected pet",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "rename",
				Description: "Rename your selected pet (uses one Name Tag)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "New name",
						Required:    true,
					},
				},
			},
		},
	}

	return cmd, b.handlePet
}

func (b *Bot) handlePet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	sub, opts := subcommand(i)

	switch sub {
	case "list":
		pets, err := b.pets.List(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		if len(pets) == 0 {
			respondEphemeral(s, i, "You don't own any pets yet. Visit `/shop view`.")
			return
		}
		var lines []string
		for _, p := range pets {
			lines = append(lines, fmt.Sprintf("**%s**: happy %d, hunger %d", p.Name, p.Happy, p.Hunger))
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Your pets",
			Description: strings.Join(lines, "\n"),
		})

	case "select":
		name := optString(opts, "name")
		owned, err := b.pets.List(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		var petID string
		for _, p := range owned {
			if strings.EqualFold(p.Name, name) {
				petID = p.ID
				break
			}
		}
		if petID == "" {
			respondEphemeral(s, i, fmt.Sprintf("You don't own a pet named %q.", name))
			return
		}
		p, err := b.pets.Select(ctx, userID, petID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("**%s** is now by your side.", p.Name))

	case "status":
		p, err := b.pets.Current(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title: p.Name,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Happiness", Value: fmt.Sprintf("%d/100", p.Happy), Inline: true},
				{Name: "Hunger", Value: fmt.Sprintf("%d", p.Hunger), Inline: true},
			},
		})

	case "feed":
		fed, err := b.pets.Feed(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("**%s** wolfed it down. Hunger is now %d.", fed.Pet.Name, fed.Pet.Hunger))

	case "play":
		played, err := b.pets.Play(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("**%s** had a great time! Happiness is now %d.", played.Pet.Name, played.Pet.Happy))

	case "rename":
		p, err := b.pets.Rename(ctx, userID, optString(opts, "name"))
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("Say hello to **%s**!", p.Name))
	}
}
