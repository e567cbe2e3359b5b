package repository

import "context"

// GuildXP is one leaderboard row.
type GuildXP struct {
	UserID string
	XP     int64
}

// Progression defines the per-guild XP store. Every mutation writes through
// immediately; there is no batching.
type Progression interface {
	// GetXP returns a user's cumulative XP in a guild, 0 when absent.
	GetXP(ctx context.Context, userID, guildID string) (int64, error)
	AddXP(ctx context.Context, delta int64, userID, guildID string) error
	SetXP(ctx context.Context, amount int64, userID, guildID string) error
	// ListGuildXP returns every (user, xp) pair in the guild ordered by
	// descending XP.
	ListGuildXP(ctx context.Context, guildID string) ([]GuildXP, error)
}
