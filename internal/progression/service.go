package progression

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/metrics"
	"github.com/unseeyou/everything-bot/internal/repository"
)

const (
	// MessageXPMin and MessageXPMax bound the XP one chat message awards.
	MessageXPMin = 15
	MessageXPMax = 25

	// RankUnranked is the sentinel returned when a user has no row in the
	// guild's progression store.
	RankUnranked = -1
)

// Progress is a user's progression snapshot within one guild.
type Progress struct {
	UserID   string
	GuildID  string
	XP       int64
	Level    int
	XPToNext int64
}

// AwardResult reports the outcome of an XP award.
type AwardResult struct {
	XPGained  int64
	NewXP     int64
	NewLevel  int
	LeveledUp bool
}

// Service defines the progression operations. Progression is per-guild, not
// global; every mutation writes through to the store immediately.
type Service interface {
	GetProgress(ctx context.Context, userID, guildID string) (*Progress, error)
	AddXP(ctx context.Context, amount int64, userID, guildID string) (*AwardResult, error)
	RemoveXP(ctx context.Context, amount int64, userID, guildID string) (*AwardResult, error)
	// SetXP accepts any admin-supplied value, including one below the
	// current XP.
	SetXP(ctx context.Context, amount int64, userID, guildID string) (*AwardResult, error)
	// SetLevel clamps to [1, LevelCap] and pins XP to the level's
	// threshold.
	SetLevel(ctx context.Context, level int, userID, guildID string) (*AwardResult, error)
	// AwardMessageXP grants the random per-message XP.
	AwardMessageXP(ctx context.Context, userID, guildID string) (*AwardResult, error)
	// Leaderboard returns the guild's (user, xp) pairs sorted descending.
	Leaderboard(ctx context.Context, guildID string) ([]repository.GuildXP, error)
	// Rank returns a user's 1-based leaderboard position, RankUnranked
	// when absent.
	Rank(ctx context.Context, userID, guildID string) (int, error)
	// MassGrant awards XP to many users in rate-limited batches.
	MassGrant(ctx context.Context, amount int64, userIDs []string, guildID string) (int, error)
}

type service struct {
	repo    repository.Progression
	guard   guildGuard
	randInt func(min, max int) int
}

type guildGuard interface {
	Acquire(key string) bool
	Release(key string)
}

// NewService creates a new progression service. The guard rejects concurrent
// mass grants for the same guild.
func NewService(repo repository.Progression, guard guildGuard) Service {
	return &service{
		repo:  repo,
		guard: guard,
		randInt: func(min, max int) int {
			return min + rand.Intn(max-min+1)
		},
	}
}

func (s *service) GetProgress(ctx context.Context, userID, guildID string) (*Progress, error) {
	xp, err := s.repo.GetXP(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get xp: %w", err)
	}
	return &Progress{
		UserID:   userID,
		GuildID:  guildID,
		XP:       xp,
		Level:    Level(xp),
		XPToNext: XPToNextLevel(xp),
	}, nil
}

func (s *service) AddXP(ctx context.Context, amount int64, userID, guildID string) (*AwardResult, error) {
	return s.applyDelta(ctx, amount, userID, guildID)
}

func (s *service) RemoveXP(ctx context.Context, amount int64, userID, guildID string) (*AwardResult, error) {
	return s.applyDelta(ctx, -amount, userID, guildID)
}

func (s *service) applyDelta(ctx context.Context, delta int64, userID, guildID string) (*AwardResult, error) {
	before, err := s.repo.GetXP(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get xp: %w", err)
	}
	if err := s.repo.AddXP(ctx, delta, userID, guildID); err != nil {
		return nil, fmt.Errorf("failed to add xp: %w", err)
	}

	newXP := before + delta
	result := &AwardResult{
		XPGained:  delta,
		NewXP:     newXP,
		NewLevel:  Level(newXP),
		LeveledUp: Level(newXP) > Level(before),
	}
	if delta > 0 {
		metrics.XPAwarded.Add(float64(delta))
	}
	if result.LeveledUp {
		metrics.LevelUps.Inc()
	}
	return result, nil
}

// SetXP overwrites XP with an arbitrary admin value. Lowering is allowed and
// takes effect on the derived level immediately.
func (s *service) SetXP(ctx context.Context, amount int64, userID, guildID string) (*AwardResult, error) {
	before, err := s.repo.GetXP(ctx, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get xp: %w", err)
	}
	if err := s.repo.SetXP(ctx, amount, userID, guildID); err != nil {
		return nil, fmt.Errorf("failed to set xp: %w", err)
	}

	logger.FromContext(ctx).Info("XP set", "user_id", userID, "guild_id", guildID, "xp", amount)
	return &AwardResult{
		XPGained:  amount - before,
		NewXP:     amount,
		NewLevel:  Level(amount),
		LeveledUp: Level(amount) > Level(before),
	}, nil
}

func (s *service) SetLevel(ctx context.Context, level int, userID, guildID string) (*AwardResult, error) {
	if level > LevelCap {
		level = LevelCap
	} else if level < 1 {
		level = 1
	}
	return s.SetXP(ctx, requirements[level-1], userID, guildID)
}

func (s *service) AwardMessageXP(ctx context.Context, userID, guildID string) (*AwardResult, error) {
	return s.AddXP(ctx, int64(s.randInt(MessageXPMin, MessageXPMax)), userID, guildID)
}

func (s *service) Leaderboard(ctx context.Context, guildID string) ([]repository.GuildXP, error) {
	entries, err := s.repo.ListGuildXP(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild xp: %w", err)
	}
	return entries, nil
}

func (s *service) Rank(ctx context.Context, userID, guildID string) (int, error) {
	entries, err := s.repo.ListGuildXP(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to list guild xp: %w", err)
	}
	for i, entry := range entries {
		if entry.UserID == userID {
			return i + 1, nil
		}
	}
	return RankUnranked, nil
}
