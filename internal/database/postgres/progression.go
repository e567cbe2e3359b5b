package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unseeyou/everything-bot/internal/repository"
)

// ProgressionRepository implements the per-guild XP store for PostgreSQL
type ProgressionRepository struct {
	db *pgxpool.Pool
}

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(db *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{db: db}
}

// GetXP returns a user's cumulative XP in a guild, 0 when absent.
func (r *ProgressionRepository) GetXP(ctx context.Context, userID, guildID string) (int64, error) {
	query := `SELECT xp FROM guild_xp WHERE user_id = $1 AND guild_id = $2`

	var xp int64
	err := r.db.QueryRow(ctx, query, userID, guildID).Scan(&xp)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get xp: %w", err)
	}
	return xp, nil
}

// AddXP applies a delta to a user's XP, creating the row when absent.
func (r *ProgressionRepository) AddXP(ctx context.Context, delta int64, userID, guildID string) error {
	query := `
		INSERT INTO guild_xp (user_id, guild_id, xp)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, guild_id) DO UPDATE SET xp = guild_xp.xp + EXCLUDED.xp
	`

	if _, err := r.db.Exec(ctx, query, userID, guildID, delta); err != nil {
		return fmt.Errorf("failed to add xp: %w", err)
	}
	return nil
}

// SetXP overwrites a user's XP, creating the row when absent.
func (r *ProgressionRepository) SetXP(ctx context.Context, amount int64, userID, guildID string) error {
	query := `
		INSERT INTO guild_xp (user_id, guild_id, xp)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, guild_id) DO UPDATE SET xp = EXCLUDED.xp
	`

	if _, err := r.db.Exec(ctx, query, userID, guildID, amount); err != nil {
		return fmt.Errorf("failed to set xp: %w", err)
	}
	return nil
}

// ListGuildXP returns every (user, xp) pair in the guild, highest XP first.
func (r *ProgressionRepository) ListGuildXP(ctx context.Context, guildID string) ([]repository.GuildXP, error) {
	query := `
		SELECT user_id, xp
		FROM guild_xp
		WHERE guild_id = $1
		ORDER BY xp DESC
	`

	rows, err := r.db.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guild xp: %w", err)
	}
	defer rows.Close()

	var entries []repository.GuildXP
	for rows.Next() {
		var entry repository.GuildXP
		if err := rows.Scan(&entry.UserID, &entry.XP); err != nil {
			return nil, fmt.Errorf("failed to scan guild xp row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}
