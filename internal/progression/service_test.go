package progression

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unseeyou/everything-bot/internal/concurrency"
	"github.com/unseeyou/everything-bot/internal/repository"
)

type fakeProgressionRepo struct {
	xp map[string]int64 // key: userID|guildID
}

func newFakeProgressionRepo() *fakeProgressionRepo {
	return &fakeProgressionRepo{xp: make(map[string]int64)}
}

func xpKey(userID, guildID string) string {
	return userID + "|" + guildID
}

func (f *fakeProgressionRepo) GetXP(_ context.Context, userID, guildID string) (int64, error) {
	return f.xp[xpKey(userID, guildID)], nil
}

func (f *fakeProgressionRepo) AddXP(_ context.Context, delta int64, userID, guildID string) error {
	f.xp[xpKey(userID, guildID)] += delta
	return nil
}

func (f *fakeProgressionRepo) SetXP(_ context.Context, amount int64, userID, guildID string) error {
	f.xp[xpKey(userID, guildID)] = amount
	return nil
}

func (f *fakeProgressionRepo) ListGuildXP(_ context.Context, guildID string) ([]repository.GuildXP, error) {
	var rows []repository.GuildXP
	suffix := "|" + guildID
	for key, xp := range f.xp {
		if len(key) > len(suffix) && key[len(key)-len(suffix):] == suffix {
			rows = append(rows, repository.GuildXP{UserID: key[:len(key)-len(suffix)], XP: xp})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].XP > rows[j].XP })
	return rows, nil
}

func newTestService(repo repository.Progression) *service {
	return &service{
		repo:    repo,
		guard:   concurrency.NewGuard(),
		randInt: func(_, max int) int { return max },
	}
}

func TestGetProgress_FreshUser(t *testing.T) {
	svc := newTestService(newFakeProgressionRepo())

	progress, err := svc.GetProgress(context.Background(), "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), progress.XP)
	assert.Equal(t, 0, progress.Level)
	assert.Equal(t, int64(100), progress.XPToNext)
}

func TestAddXP_DetectsLevelUp(t *testing.T) {
	repo := newFakeProgressionRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	result, err := svc.AddXP(ctx, 99, "alice", "g1")
	require.NoError(t, err)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 0, result.NewLevel)

	result, err = svc.AddXP(ctx, 1, "alice", "g1")
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 1, result.NewLevel)
	assert.Equal(t, int64(100), result.NewXP)
}

func TestRemoveXP(t *testing.T) {
	repo := newFakeProgressionRepo()
	require.NoError(t, repo.SetXP(context.Background(), 150, "alice", "g1"))
	svc := newTestService(repo)

	result, err := svc.RemoveXP(context.Background(), 100, "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), result.NewXP)
	assert.Equal(t, 0, result.NewLevel)
	assert.False(t, result.LeveledUp)
}

func TestSetXP_LoweringTakesEffectImmediately(t *testing.T) {
	repo := newFakeProgressionRepo()
	require.NoError(t, repo.SetXP(context.Background(), 500, "alice", "g1")) // level 2
	svc := newTestService(repo)

	result, err := svc.SetXP(context.Background(), 50, "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), result.NewXP)
	assert.Equal(t, 0, result.NewLevel)

	progress, err := svc.GetProgress(context.Background(), "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Level)
}

func TestSetLevel(t *testing.T) {
	repo := newFakeProgressionRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	result, err := svc.SetLevel(ctx, 5, "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, 5, result.NewLevel)
	// XP pinned to the exact threshold the level starts at.
	assert.Equal(t, Requirements()[4], result.NewXP)
}

func TestSetLevel_Clamps(t *testing.T) {
	repo := newFakeProgressionRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	result, err := svc.SetLevel(ctx, 0, "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.NewLevel)

	result, err = svc.SetLevel(ctx, LevelCap+500, "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, LevelCap, result.NewLevel)
}

func TestAwardMessageXP(t *testing.T) {
	repo := newFakeProgressionRepo()
	svc := newTestService(repo) // deterministic: always the max draw

	result, err := svc.AwardMessageXP(context.Background(), "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(MessageXPMax), result.XPGained)
	assert.Equal(t, int64(MessageXPMax), result.NewXP)
}

func TestLeaderboardAndRank(t *testing.T) {
	repo := newFakeProgressionRepo()
	ctx := context.Background()
	require.NoError(t, repo.SetXP(ctx, 300, "alice", "g1"))
	require.NoError(t, repo.SetXP(ctx, 500, "bob", "g1"))
	require.NoError(t, repo.SetXP(ctx, 100, "carol", "g1"))
	require.NoError(t, repo.SetXP(ctx, 9999, "mallory", "other-guild"))
	svc := newTestService(repo)

	entries, err := svc.Leaderboard(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, "alice", entries[1].UserID)
	assert.Equal(t, "carol", entries[2].UserID)

	rank, err := svc.Rank(ctx, "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = svc.Rank(ctx, "stranger", "g1")
	require.NoError(t, err)
	assert.Equal(t, RankUnranked, rank)
}
