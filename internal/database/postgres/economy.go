package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unseeyou/everything-bot/internal/domain"
)

// EconomyRepository implements the economy repository for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// GetAccount retrieves an account's balances and inventory blob. A missing
// row is provisioned with zero defaults so every user id resolves to an
// account.
func (r *EconomyRepository) GetAccount(ctx context.Context, userID string) (domain.Money, domain.Money, string, error) {
	query := `
		SELECT wallet_balance, bank_balance, inventory
		FROM accounts
		WHERE user_id = $1
	`

	var wallet, bank int64
	var inventory string
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet, &bank, &inventory)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO accounts (user_id) VALUES ($1)
			ON CONFLICT (user_id) DO NOTHING
		`
		if _, err := r.db.Exec(ctx, insert, userID); err != nil {
			return 0, 0, "", fmt.Errorf("failed to provision account: %w", err)
		}
		return 0, 0, "", nil
	}
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to get account: %w", err)
	}

	return domain.Money(wallet), domain.Money(bank), inventory, nil
}

// PutAccount replaces the full account row.
func (r *EconomyRepository) PutAccount(ctx context.Context, userID string, wallet, bank domain.Money, inventoryBlob string) error {
	query := `
		INSERT INTO accounts (user_id, wallet_balance, bank_balance, inventory)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			wallet_balance = EXCLUDED.wallet_balance,
			bank_balance = EXCLUDED.bank_balance,
			inventory = EXCLUDED.inventory
	`

	if _, err := r.db.Exec(ctx, query, userID, int64(wallet), int64(bank), inventoryBlob); err != nil {
		return fmt.Errorf("failed to put account: %w", err)
	}
	return nil
}

// GetJob returns the stored job name, "" when the user has no row.
func (r *EconomyRepository) GetJob(ctx context.Context, userID string) (string, error) {
	query := `SELECT job_name FROM user_jobs WHERE user_id = $1`

	var jobName string
	err := r.db.QueryRow(ctx, query, userID).Scan(&jobName)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get job: %w", err)
	}
	return jobName, nil
}

// SetJob stores the user's job name.
func (r *EconomyRepository) SetJob(ctx context.Context, userID, jobName string) error {
	query := `
		INSERT INTO user_jobs (user_id, job_name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET job_name = EXCLUDED.job_name
	`

	if _, err := r.db.Exec(ctx, query, userID, jobName); err != nil {
		return fmt.Errorf("failed to set job: %w", err)
	}
	return nil
}

// ApplyBankInterest credits every bank balance by 5% in one statement and
// returns the number of accounts touched.
func (r *EconomyRepository) ApplyBankInterest(ctx context.Context) (int64, error) {
	query := `UPDATE accounts SET bank_balance = bank_balance + ROUND(bank_balance / 20.0)`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to apply bank interest: %w", err)
	}
	return tag.RowsAffected(), nil
}
