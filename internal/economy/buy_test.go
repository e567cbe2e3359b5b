package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unseeyou/everything-bot/internal/domain"
)

func TestBuy(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("alice", 10000, 0) // 100 coins
	svc := newTestService(repo)

	item, err := svc.Buy(context.Background(), "alice", "Cookie")
	require.NoError(t, err)
	assert.Equal(t, "Cookie", item.Name)

	wallet, _, _, _ := repo.GetAccount(context.Background(), "alice")
	assert.Equal(t, domain.Money(9500), wallet) // 100.00 - 5.00
	assert.Equal(t, 1, repo.inventory("alice").Count("Cookie"))
}

func TestBuy_CaseInsensitiveLookup(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("alice", 10000, 0)
	svc := newTestService(repo)

	item, err := svc.Buy(context.Background(), "alice", "pet food")
	require.NoError(t, err)
	assert.Equal(t, "Pet food", item.Name)
}

func TestBuy_UnknownItem(t *testing.T) {
	repo := newFakeEconomyRepo()
	svc := newTestService(repo)

	_, err := svc.Buy(context.Background(), "alice", "Dragon")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestBuy_InsufficientFundsLeavesAccountUntouched(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("alice", 5999, 100000) // one cent short of a Dog; bank money does not count
	svc := newTestService(repo)

	_, err := svc.Buy(context.Background(), "alice", "Dog")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	wallet, bank, _, _ := repo.GetAccount(context.Background(), "alice")
	assert.Equal(t, domain.Money(5999), wallet)
	assert.Equal(t, domain.Money(100000), bank)
	assert.Equal(t, 0, repo.inventory("alice").Len())
}

func TestBuy_TwoDogsAreDistinctPets(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("alice", 100000, 0)
	svc := newTestService(repo)
	ctx := context.Background()

	first, err := svc.Buy(ctx, "alice", "Dog")
	require.NoError(t, err)
	second, err := svc.Buy(ctx, "alice", "Dog")
	require.NoError(t, err)

	// Same species, fresh instance payloads with distinct ids.
	assert.NotEqual(t, first.PetID(), second.PetID())

	inv := repo.inventory("alice")
	require.Len(t, inv.Pets(), 2)

	// Each starts with the fresh-pet defaults.
	pet, ok := domain.PetFromItem(inv.Pets()[0])
	require.True(t, ok)
	assert.Equal(t, domain.PetDefaultName, pet.Name)
	assert.Equal(t, domain.PetDefaultHappy, pet.Happy)
	assert.Equal(t, domain.PetDefaultHunger, pet.Hunger)
}

func TestBuy_PetTemplateStaysClean(t *testing.T) {
	repo := newFakeEconomyRepo()
	repo.seed("alice", 100000, 0)
	svc := newTestService(repo)

	_, err := svc.Buy(context.Background(), "alice", "Cat")
	require.NoError(t, err)

	// The catalog template must not have absorbed the instance payload.
	template, ok := svc.shop.Find("Cat")
	require.True(t, ok)
	assert.Nil(t, template.Data)
}
