package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) bankCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "bank",
		Description: "Manage your wallet and bank balance",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "balance",
				Description: "Show your balances",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "deposit",
				Description: "Move money from your wallet into the bank",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "amount",
						Description: "Amount to deposit",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "withdraw",
				Description: "Move money from the bank into your wallet",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "amount",
						Description: "Amount to withdraw",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "transfer",
				Description: "Give wallet money to another member",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "recipient",
						Description: "Who receives the money",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "amount",
						Description: "Amount to transfer",
						Required:    true,
					},
				},
			},
		},
	}

	return cmd, b.handleBank
}

func (b *Bot) handleBank(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	sub, opts := subcommand(i)

	switch sub {
	case "balance":
		acct, err := b.economy.GetAccount(ctx, userID)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title: "Balance",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Wallet", Value: acct.Wallet.String(), Inline: true},
				{Name: "Bank", Value: acct.Bank.String(), Inline: true},
				{Name: "Net worth", Value: acct.TotalBalance().String(), Inline: true},
			},
		})

	case "deposit":
		acct, err := b.economy.Deposit(ctx, userID, optFloat(opts, "amount"))
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("Deposited. Wallet %s, bank %s.", acct.Wallet, acct.Bank))

	case "withdraw":
		acct, err := b.economy.Withdraw(ctx, userID, optFloat(opts, "amount"))
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("Withdrawn. Wallet %s, bank %s.", acct.Wallet, acct.Bank))

	case "transfer":
		recipient := optUser(opts, "recipient", s)
		sent, err := b.economy.Transfer(ctx, userID, recipient, optFloat(opts, "amount"))
		if err != nil {
			respondError(s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("Sent **%s** to <@%s>.", sent, recipient))
	}
}
