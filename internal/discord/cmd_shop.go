package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/unseeyou/everything-bot/internal/domain"
)

func (b *Bot) shopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse and buy from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "List everything for sale",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "buy",
				Description: "Buy an item with wallet money",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "item",
						Description: "Item name",
						Required:    true,
					},
				},
			},
		},
	}

	return cmd, b.handleShop
}

func (b *Bot) handleShop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	sub, opts := subcommand(i)

	switch sub {
	case "view":
		embed := &discordgo.MessageEmbed{Title: b.shop.Name()}
		for _, item := range b.shop.Items() {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("%s %s (%d coins)", item.Emoji, item.Name, item.Price),
				Value: item.Description,
			})
		}
		respondEmbed(s, i, embed)

	case "buy":
		name := optString(opts, "item")
		item, err := b.economy.Buy(ctx, userID, name)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("You bought %s **%s**!", item.Emoji, item.Name))
	}
}

func (b *Bot) inventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Show everything you own",
	}

	return cmd, func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
		acct, err := b.economy.GetAccount(ctx, interactionUserID(i))
		if err != nil {
			respondError(s, i, err)
			return
		}

		items := acct.Inventory.Items()
		if len(items) == 0 {
			respondEphemeral(s, i, "Your inventory is empty.")
			return
		}

		counts := make(map[string]int)
		var order []string
		for _, item := range items {
			label := itemLabel(item)
			if counts[label] == 0 {
				order = append(order, label)
			}
			counts[label]++
		}

		var lines []string
		for _, label := range order {
			lines = append(lines, fmt.Sprintf("%s x%d", label, counts[label]))
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Inventory",
			Description: strings.Join(lines, "\n"),
		})
	}
}

// itemLabel renders an inventory entry's display label. Pets show their given
// name alongside the species.
func itemLabel(item domain.ShopItem) string {
	if item.IsPet() {
		if petName, ok := item.Data.String("name"); ok && petName != "" {
			return fmt.Sprintf("%s (%s)", item.Name, petName)
		}
	}
	return item.Name
}
