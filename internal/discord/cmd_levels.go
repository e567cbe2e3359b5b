package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/unseeyou/everything-bot/internal/progression"
)

func (b *Bot) levelsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminOnly := int64(discordgo.PermissionManageServer)

	cmd := &discordgo.ApplicationCommand{
		Name:        "levels",
		Description: "Chat activity levels and rankings",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "rank",
				Description: "Show a member's level and leaderboard position",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "member",
						Description: "Member to look up (defaults to you)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "leaderboard",
				Description: "Show the server's top chatters",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Set a member's level (admin)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "member",
						Description: "Member to adjust",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "level",
						Description: "Target level",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "grant",
				Description: "Grant XP to every listed member (admin)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "XP per member",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "members",
						Description: "Space-separated member mentions or ids",
						Required:    true,
					},
				},
			},
		},
		DefaultMemberPermissions: &adminOnly,
	}

	return cmd, b.handleLevels
}

func (b *Bot) handleLevels(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	guildID := i.GuildID
	sub, opts := subcommand(i)

	switch sub {
	case "rank":
		target := optUser(opts, "member", s)
		if target == "" {
			target = userID
		}
		progress, err := b.progression.GetProgress(ctx, target, guildID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		rank, err := b.progression.Rank(ctx, target, guildID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		rankLabel := "unranked"
		if rank != progression.RankUnranked {
			rankLabel = fmt.Sprintf("#%d", rank)
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title: "Rank",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Member", Value: fmt.Sprintf("<@%s>", target), Inline: true},
				{Name: "Level", Value: fmt.Sprintf("%d", progress.Level), Inline: true},
				{Name: "XP", Value: fmt.Sprintf("%d (%d to next)", progress.XP, progress.XPToNext), Inline: true},
				{Name: "Position", Value: rankLabel, Inline: true},
			},
		})

	case "leaderboard":
		entries, err := b.progression.Leaderboard(ctx, guildID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		if len(entries) == 0 {
			respondEphemeral(s, i, "Nobody has earned XP here yet.")
			return
		}
		if len(entries) > 10 {
			entries = entries[:10]
		}
		var lines []string
		for pos, entry := range entries {
			lines = append(lines, fmt.Sprintf("%d. <@%s>: level %d (%d XP)",
				pos+1, entry.UserID, progression.Level(entry.XP), entry.XP))
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Leaderboard",
			Description: strings.Join(lines, "\n"),
		})

	case "set":
		target := optUser(opts, "member", s)
		level := int(optInt(opts, "level"))
		result, err := b.progression.SetLevel(ctx, level, target, guildID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("<@%s> is now level %d.", target, result.NewLevel))

	case "grant":
		amount := optInt(opts, "amount")
		ids := parseMemberList(optString(opts, "members"))
		if len(ids) == 0 {
			respondEphemeral(s, i, "No members given.")
			return
		}
		// Batched grants outlive the 3s interaction window; acknowledge
		// first and report when done.
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		})
		if err != nil {
			return
		}
		granted, err := b.progression.MassGrant(ctx, amount, ids, guildID)
		content := fmt.Sprintf("Granted %d XP to %d member(s).", amount, granted)
		if err != nil {
			content = "Grant failed: " + err.Error()
		}
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
			return
		}
	}
}

// parseMemberList extracts user ids from a string of mentions or raw ids.
func parseMemberList(raw string) []string {
	var ids []string
	for _, field := range strings.Fields(raw) {
		id := strings.TrimSuffix(strings.TrimPrefix(field, "<@"), ">")
		id = strings.TrimPrefix(id, "!")
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
