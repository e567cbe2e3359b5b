package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/logger"
)

const (
	// GrantBatchSize is how many users one mass-grant batch touches.
	GrantBatchSize = 10
	// GrantBatchPause rate-limits consecutive batches.
	GrantBatchPause = 250 * time.Millisecond
)

// MassGrant awards XP to every listed user in small batches with inter-batch
// pauses. A second concurrent grant for the same guild is rejected instead of
// double-running. Returns how many users were granted before completion or
// cancellation.
func (s *service) MassGrant(ctx context.Context, amount int64, userIDs []string, guildID string) (int, error) {
	log := logger.FromContext(ctx)

	if !s.guard.Acquire(guildID) {
		return 0, fmt.Errorf("%w: guild %s", domain.ErrGrantInProgress, guildID)
	}
	defer s.guard.Release(guildID)

	granted := 0
	for start := 0; start < len(userIDs); start += GrantBatchSize {
		end := start + GrantBatchSize
		if end > len(userIDs) {
			end = len(userIDs)
		}

		for _, userID := range userIDs[start:end] {
			if err := s.repo.AddXP(ctx, amount, userID, guildID); err != nil {
				return granted, fmt.Errorf("failed to grant xp to %s: %w", userID, err)
			}
			granted++
		}

		if end < len(userIDs) {
			select {
			case <-ctx.Done():
				log.Warn("Mass grant cancelled", "guild_id", guildID, "granted", granted)
				return granted, ctx.Err()
			case <-time.After(GrantBatchPause):
			}
		}
	}

	log.Info("Mass grant complete", "guild_id", guildID, "granted", granted, "amount", amount)
	return granted, nil
}
