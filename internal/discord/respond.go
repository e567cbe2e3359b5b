package discord

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/unseeyou/everything-bot/internal/domain"
)

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// respondError maps service errors to user-facing messages. Unknown errors
// get a generic reply so internals never leak into chat.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	msg := "Something went wrong, try again later."
	for _, known := range []error{
		domain.ErrItemNotFound,
		domain.ErrInsufficientFunds,
		domain.ErrInvalidAmount,
		domain.ErrSelfTarget,
		domain.ErrNothingToSteal,
		domain.ErrNoJob,
		domain.ErrAlreadyEmployed,
		domain.ErrJobNotFound,
		domain.ErrPetNameTooShort,
		domain.ErrNoPetSelected,
		domain.ErrPetNotFound,
		domain.ErrPetTooHungry,
		domain.ErrGrantInProgress,
	} {
		if errors.Is(err, known) {
			msg = known.Error()
			break
		}
	}
	respondEphemeral(s, i, msg)
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// subcommand returns the invoked subcommand name and its options.
func subcommand(i *discordgo.InteractionCreate) (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		return "", nil
	}
	return opts[0].Name, opts[0].Options
}

func optString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range opts {
		if o.Name == name {
			return o.StringValue()
		}
	}
	return ""
}

func optFloat(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) float64 {
	for _, o := range opts {
		if o.Name == name {
			return o.FloatValue()
		}
	}
	return 0
}

func optInt(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	for _, o := range opts {
		if o.Name == name {
			return o.IntValue()
		}
	}
	return 0
}

func optUser(opts []*discordgo.ApplicationCommandInteractionDataOption, name string, s *discordgo.Session) string {
	for _, o := range opts {
		if o.Name == name {
			if u := o.UserValue(s); u != nil {
				return u.ID
			}
		}
	}
	return ""
}
