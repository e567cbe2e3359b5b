package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/unseeyou/everything-bot/internal/cooldown"
	"github.com/unseeyou/everything-bot/internal/economy"
)

func (b *Bot) crimeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "crime",
		Description: "Risk it all for someone else's money",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "steal",
				Description: "Steal from another member's wallet",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "victim",
						Description: "Who to steal from",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "bankrob",
				Description: "Rob another member's bank account",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "victim",
						Description: "Whose bank to rob",
						Required:    true,
					},
				},
			},
		},
	}

	return cmd, b.handleCrime
}

// handleCrime shares one cooldown slot across both crimes: committing either
// one locks out both for the full window.
func (b *Bot) handleCrime(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	sub, opts := subcommand(i)
	victimID := optUser(opts, "victim", s)

	remaining, ok := b.cooldowns.Try(userID, cooldown.ActionRob, cooldown.RobCooldown)
	if !ok {
		respondEphemeral(s, i, fmt.Sprintf("The heat is still on. Lay low for another %s.", remaining.Round(time.Second)))
		return
	}

	var (
		result *economy.CrimeResult
		err    error
	)
	switch sub {
	case "steal":
		result, err = b.economy.Steal(ctx, userID, victimID)
	case "bankrob":
		result, err = b.economy.Bankrob(ctx, userID, victimID)
	default:
		return
	}
	if err != nil {
		// A rejected attempt is not a crime; give the slot back.
		b.cooldowns.Reset(userID, cooldown.ActionRob)
		respondError(s, i, err)
		return
	}

	if !result.Success {
		respond(s, i, fmt.Sprintf("You got caught! <@%s> saw you coming.", victimID))
		return
	}
	respond(s, i, fmt.Sprintf("You got away with **%s** from <@%s>!", result.Amount, victimID))
}
