package economy

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/unseeyou/everything-bot/internal/catalog"
	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/metrics"
	"github.com/unseeyou/everything-bot/internal/repository"
)

// Account is the aggregate loaded for one command invocation: ledger balances,
// inventory, and the cached job. It is never held between commands; every
// operation is a fresh load-mutate-save cycle with no concurrency token, so
// two concurrent commands on the same user race last-writer-wins.
type Account struct {
	UserID    string
	Wallet    domain.Money
	Bank      domain.Money
	Inventory *domain.Inventory
	Job       domain.Job
}

// TotalBalance is the derived sum of wallet and bank.
func (a *Account) TotalBalance() domain.Money {
	return a.Wallet + a.Bank
}

// WorkResult reports the outcome of working one shift.
type WorkResult struct {
	Job          domain.Job
	Earned       domain.Money
	PetsSaddened int
}

// CrimeResult reports a steal or bankrob attempt.
type CrimeResult struct {
	Success      bool
	Amount       domain.Money
	VictimWallet domain.Money
	VictimBank   domain.Money
}

// Service defines the economy aggregate operations.
type Service interface {
	GetAccount(ctx context.Context, userID string) (*Account, error)
	Deposit(ctx context.Context, userID string, amount float64) (*Account, error)
	Withdraw(ctx context.Context, userID string, amount float64) (*Account, error)
	Transfer(ctx context.Context, fromID, toID string, amount float64) (domain.Money, error)
	Buy(ctx context.Context, userID, itemNameOrID string) (domain.ShopItem, error)
	Steal(ctx context.Context, thiefID, victimID string) (*CrimeResult, error)
	Bankrob(ctx context.Context, thiefID, victimID string) (*CrimeResult, error)
	ApplyJob(ctx context.Context, userID, jobName string) (domain.Job, error)
	Resign(ctx context.Context, userID string) error
	CurrentJob(ctx context.Context, userID string) (domain.Job, error)
	Work(ctx context.Context, userID string) (*WorkResult, error)
}

type service struct {
	repo    repository.Economy
	shop    *catalog.Catalog
	jobs    []domain.Job
	randInt func(min, max int) int // inclusive bounds
	petID   func() string
}

// NewService creates a new economy service over the given store and catalogs.
func NewService(repo repository.Economy, shop *catalog.Catalog, jobs []domain.Job) Service {
	return &service{
		repo:    repo,
		shop:    shop,
		jobs:    jobs,
		randInt: defaultRandInt,
		petID:   newPetID,
	}
}

func defaultRandInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

// load reads the account row and materializes the aggregate. Absent rows come
// back as zero-balance, empty-inventory defaults.
func (s *service) load(ctx context.Context, userID string) (*Account, error) {
	wallet, bank, blob, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	inventory, err := domain.InventoryFromBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decode inventory for %s: %w", userID, err)
	}

	jobName, err := s.repo.GetJob(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	job := domain.Unemployed
	if jobName != "" {
		if found, ok := catalog.JobByName(s.jobs, jobName); ok {
			job = found
		}
	}

	return &Account{
		UserID:    userID,
		Wallet:    wallet,
		Bank:      bank,
		Inventory: inventory,
		Job:       job,
	}, nil
}

// save writes the whole aggregate back: balances plus serialized inventory.
func (s *service) save(ctx context.Context, acct *Account) error {
	blob, err := acct.Inventory.MarshalBlob()
	if err != nil {
		return err
	}
	if err := s.repo.PutAccount(ctx, acct.UserID, acct.Wallet, acct.Bank, blob); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// editWallet and editBank are the unchecked ledger primitives: unconditional
// deltas followed by a full write-back. The non-negative invariant is
// enforced one layer up, in the command handlers below, which validate
// sufficiency before calling these.
func (s *service) editWallet(ctx context.Context, acct *Account, delta domain.Money) error {
	acct.Wallet += delta
	return s.save(ctx, acct)
}

func (s *service) editBank(ctx context.Context, acct *Account, delta domain.Money) error {
	acct.Bank += delta
	return s.save(ctx, acct)
}

func (s *service) GetAccount(ctx context.Context, userID string) (*Account, error) {
	return s.load(ctx, userID)
}

// toCents converts a caller-supplied display amount and rejects non-positive
// results after conversion.
func toCents(amount float64) (domain.Money, error) {
	cents := domain.MoneyFromDisplay(amount)
	if cents <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	return cents, nil
}

func (s *service) Deposit(ctx context.Context, userID string, amount float64) (*Account, error) {
	log := logger.FromContext(ctx)

	cents, err := toCents(amount)
	if err != nil {
		metrics.RecordTransaction("deposit", false)
		return nil, err
	}

	acct, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cents > acct.Wallet {
		metrics.RecordTransaction("deposit", false)
		return nil, fmt.Errorf("%w: wallet has %s", domain.ErrInsufficientFunds, acct.Wallet)
	}

	if err := s.editBank(ctx, acct, cents); err != nil {
		return nil, err
	}
	if err := s.editWallet(ctx, acct, -cents); err != nil {
		return nil, err
	}

	metrics.RecordTransaction("deposit", true)
	metrics.MoneyMovedCents.WithLabelValues("deposit").Add(float64(cents))
	log.Info("Deposit complete", "user_id", userID, "amount", cents)
	return acct, nil
}

func (s *service) Withdraw(ctx context.Context, userID string, amount float64) (*Account, error) {
	log := logger.FromContext(ctx)

	cents, err := toCents(amount)
	if err != nil {
		metrics.RecordTransaction("withdraw", false)
		return nil, err
	}

	acct, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cents > acct.Bank {
		metrics.RecordTransaction("withdraw", false)
		return nil, fmt.Errorf("%w: bank has %s", domain.ErrInsufficientFunds, acct.Bank)
	}

	if err := s.editBank(ctx, acct, -cents); err != nil {
		return nil, err
	}
	if err := s.editWallet(ctx, acct, cents); err != nil {
		return nil, err
	}

	metrics.RecordTransaction("withdraw", true)
	metrics.MoneyMovedCents.WithLabelValues("withdraw").Add(float64(cents))
	log.Info("Withdrawal complete", "user_id", userID, "amount", cents)
	return acct, nil
}

// Transfer debits the source wallet and credits the target wallet as two
// separate persisted writes. Partial failure between them is a known,
// accepted risk; there is no compensating transaction.
func (s *service) Transfer(ctx context.Context, fromID, toID string, amount float64) (domain.Money, error) {
	log := logger.FromContext(ctx)

	if fromID == toID {
		metrics.RecordTransaction("transfer", false)
		return 0, domain.ErrSelfTarget
	}

	cents, err := toCents(amount)
	if err != nil {
		metrics.RecordTransaction("transfer", false)
		return 0, err
	}

	source, err := s.load(ctx, fromID)
	if err != nil {
		return 0, err
	}
	if cents > source.Wallet {
		metrics.RecordTransaction("transfer", false)
		return 0, fmt.Errorf("%w: wallet has %s", domain.ErrInsufficientFunds, source.Wallet)
	}

	if err := s.editWallet(ctx, source, -cents); err != nil {
		return 0, err
	}

	target, err := s.load(ctx, toID)
	if err != nil {
		return 0, err
	}
	if err := s.editWallet(ctx, target, cents); err != nil {
		return 0, err
	}

	metrics.RecordTransaction("transfer", true)
	metrics.MoneyMovedCents.WithLabelValues("transfer").Add(float64(cents))
	log.Info("Transfer complete", "from", fromID, "to", toID, "amount", cents)
	return cents, nil
}
