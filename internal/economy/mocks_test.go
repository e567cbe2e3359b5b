package economy

import (
	"context"

	"github.com/unseeyou/everything-bot/internal/catalog"
	"github.com/unseeyou/everything-bot/internal/domain"
)

// fakeEconomyRepo is an in-memory stand-in for the postgres store. It mirrors
// the real repository's provision-on-read behavior so aggregate tests see the
// same zero-value defaults a fresh row would produce.
type fakeEconomyRepo struct {
	accounts map[string]*accountRow
	jobs     map[string]string

	interestRuns int
}

type accountRow struct {
	wallet domain.Money
	bank   domain.Money
	blob   string
}

func newFakeEconomyRepo() *fakeEconomyRepo {
	return &fakeEconomyRepo{
		accounts: make(map[string]*accountRow),
		jobs:     make(map[string]string),
	}
}

func (f *fakeEconomyRepo) row(userID string) *accountRow {
	r, ok := f.accounts[userID]
	if !ok {
		r = &accountRow{}
		f.accounts[userID] = r
	}
	return r
}

func (f *fakeEconomyRepo) GetAccount(_ context.Context, userID string) (domain.Money, domain.Money, string, error) {
	r := f.row(userID)
	return r.wallet, r.bank, r.blob, nil
}

func (f *fakeEconomyRepo) PutAccount(_ context.Context, userID string, wallet, bank domain.Money, blob string) error {
	r := f.row(userID)
	r.wallet, r.bank, r.blob = wallet, bank, blob
	return nil
}

func (f *fakeEconomyRepo) GetJob(_ context.Context, userID string) (string, error) {
	return f.jobs[userID], nil
}

func (f *fakeEconomyRepo) SetJob(_ context.Context, userID, jobName string) error {
	f.jobs[userID] = jobName
	return nil
}

func (f *fakeEconomyRepo) ApplyBankInterest(_ context.Context) (int64, error) {
	f.interestRuns++
	var touched int64
	for _, r := range f.accounts {
		r.bank += r.bank.MultiplyRounded(0.05)
		touched++
	}
	return touched, nil
}

// seed writes balances directly, bypassing the service.
func (f *fakeEconomyRepo) seed(userID string, wallet, bank domain.Money) {
	r := f.row(userID)
	r.wallet, r.bank = wallet, bank
}

// inventory decodes a user's stored blob for assertions.
func (f *fakeEconomyRepo) inventory(userID string) *domain.Inventory {
	inv, err := domain.InventoryFromBlob(f.row(userID).blob)
	if err != nil {
		panic(err)
	}
	return inv
}

// newTestService wires a service over the fake repo with deterministic
// randomness: randInt always returns max, pet ids count up.
func newTestService(repo *fakeEconomyRepo) *service {
	shop, err := catalog.DefaultShop()
	if err != nil {
		panic(err)
	}
	jobs, err := catalog.DefaultJobs()
	if err != nil {
		panic(err)
	}

	n := 0
	return &service{
		repo: repo,
		shop: shop,
		jobs: jobs,
		randInt: func(_, max int) int {
			return max
		},
		petID: func() string {
			n++
			return string(rune('a' + n - 1))
		},
	}
}

// scriptRolls replaces randInt with a fixed sequence, panicking when
// exhausted so tests fail loudly on unexpected draws.
func scriptRolls(s *service, rolls ...int) {
	i := 0
	s.randInt = func(_, _ int) int {
		if i >= len(rolls) {
			panic("randInt called more times than scripted")
		}
		v := rolls[i]
		i++
		return v
	}
}
