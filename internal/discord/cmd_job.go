package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/unseeyou/everything-bot/internal/cooldown"
)

func (b *Bot) jobCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "job",
		Description: "Find work and earn a salary",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show the available jobs",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "apply",
				Description: "Take a job",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Job name",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "current",
				Description: "Show your current job",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "resign",
				Description: "Quit your current job",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "work",
				Description: "Work a shift and collect your salary",
			},
		},
	}

	return cmd, b.handleJob
}

func (b *Bot) handleJob(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	sub, opts := subcommand(i)

	switch sub {
	case "list":
		var lines []string
		for _, job := range b.jobs {
			lines = append(lines, fmt.Sprintf("**%s** (%s/shift)\n%s", job.Name, job.Salary, job.Description))
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Job board",
			Description: strings.Join(lines, "\n\n"),
		})

	case "apply":
		name := optString(opts, "name")
		job, err := b.economy.ApplyJob(ctx, userID, name)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("You are now employed as a **%s**.", job.Name))

	case "current":
		job, err := b.economy.CurrentJob(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		if job.IsUnemployed() {
			respondEphemeral(s, i, "You are unemployed. Use `/job list` to find work.")
			return
		}
		respond(s, i, fmt.Sprintf("You work as a **%s** earning %s per shift.", job.Name, job.Salary))

	case "resign":
		if err := b.economy.Resign(ctx, userID); err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, "You handed in your resignation.")

	case "work":
		if remaining, ok := b.cooldowns.Try(userID, cooldown.ActionWork, cooldown.WorkCooldown); !ok {
			respondEphemeral(s, i, fmt.Sprintf("You are exhausted. Next shift in %s.", remaining.Round(time.Second)))
			return
		}
		result, err := b.economy.Work(ctx, userID)
		if err != nil {
			b.cooldowns.Reset(userID, cooldown.ActionWork)
			respondError(s, i, err)
			return
		}
		msg := fmt.Sprintf("You worked a shift as a **%s** and earned **%s**.", result.Job.Name, result.Earned)
		if result.PetsSaddened > 0 {
			msg += fmt.Sprintf(" Your %d pet(s) missed you while you were gone.", result.PetsSaddened)
		}
		respond(s, i, msg)
	}
}
