package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unseeyou/everything-bot/internal/domain"
)

func TestSteal_Success(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("thief", 0, 0)
	repo.seed("victim", 5000, 0)
	svc := newTestService(repo)
	scriptRolls(svc, 70, 30) // roll 70 succeeds (<= 70), then steal 30 cents

	result, err := svc.Steal(context.Background(), "thief", "victim")
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, domain.Money(30), result.Amount)

	wallet, _, _, _ := repo.GetAccount(context.Background(), "thief")
	assert.Equal(t, domain.Money(30), wallet)
	wallet, _, _, _ = repo.GetAccount(context.Background(), "victim")
	assert.Equal(t, domain.Money(4970), wallet)
}

func TestSteal_FailedRollMovesNothing(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("victim", 5000, 0)
	svc := newTestService(repo)
	scriptRolls(svc, 71) // roll 71 fails (> 70), no amount draw

	result, err := svc.Steal(context.Background(), "thief", "victim")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domain.Money(0), result.Amount)

	wallet, _, _, _ := repo.GetAccount(context.Background(), "victim")
	assert.Equal(t, domain.Money(5000), wallet)
	wallet, _, _, _ = repo.GetAccount(context.Background(), "thief")
	assert.Equal(t, domain.Money(0), wallet)
}

func TestSteal_SelfRejected(t *testing.T) {
	repo := newFakeEconomyRepo()
	svc := newTestService(repo)

	_, err := svc.Steal(context.Background(), "thief", "thief")
	assert.ErrorIs(t, err, domain.ErrSelfTarget)
}

func TestSteal_EmptyWalletRejected(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("victim", 0, 99999) // bank money is out of reach for steal
	svc := newTestService(repo)

	_, err := svc.Steal(context.Background(), "thief", "victim")
	assert.ErrorIs(t, err, domain.ErrNothingToSteal)
}

func TestSteal_HaulCappedAtHundredCoins(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("victim", 99999999, 0)
	svc := newTestService(repo)

	var drawnMax int
	rolls := []int{1, 0}
	i := 0
	svc.randInt = func(_, max int) int {
		if i == 1 {
			drawnMax = max
		}
		v := rolls[i]
		if i == 1 {
			v = max // take the cap
		}
		i++
		return v
	}

	result, err := svc.Steal(context.Background(), "thief", "victim")
	require.NoError(t, err)
	assert.Equal(t, StealCapCents, drawnMax)
	assert.Equal(t, domain.Money(StealCapCents), result.Amount)
}

func TestBankrob_TakesFromBank(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("thief", 0, 0)
	repo.seed("victim", 100, 5000)
	svc := newTestService(repo)
	scriptRolls(svc, 1, 2000)

	result, err := svc.Bankrob(context.Background(), "thief", "victim")
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, domain.Money(2000), result.Amount)

	// The haul comes out of the bank and lands in the thief's wallet.
	wallet, bank, _, _ := repo.GetAccount(context.Background(), "victim")
	assert.Equal(t, domain.Money(100), wallet)
	assert.Equal(t, domain.Money(3000), bank)
	wallet, bank, _, _ = repo.GetAccount(context.Background(), "thief")
	assert.Equal(t, domain.Money(2000), wallet)
	assert.Equal(t, domain.Money(0), bank)
}

func TestBankrob_EmptyBankRejected(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("victim", 5000, 0)
	svc := newTestService(repo)

	_, err := svc.Bankrob(context.Background(), "thief", "victim")
	assert.ErrorIs(t, err, domain.ErrNothingToSteal)
}
