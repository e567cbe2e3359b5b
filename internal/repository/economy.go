package repository

import (
	"context"

	"github.com/unseeyou/everything-bot/internal/domain"
)

// Economy defines the persistence boundary for economy accounts. Reads of an
// absent row return zero-valued defaults and implicitly provision the row;
// writes are full replacements, never partial-field updates. Each call is
// individually atomic but a load-mutate-save cycle is not: last-writer-wins
// on concurrent commands is an accepted weakness of the model.
type Economy interface {
	// GetAccount returns the wallet and bank balances in minor units and
	// the serialized inventory blob.
	GetAccount(ctx context.Context, userID string) (wallet, bank domain.Money, inventoryBlob string, err error)
	// PutAccount replaces the full account row.
	PutAccount(ctx context.Context, userID string, wallet, bank domain.Money, inventoryBlob string) error

	// GetJob returns the stored job name, or "" when the user has none.
	GetJob(ctx context.Context, userID string) (string, error)
	SetJob(ctx context.Context, userID, jobName string) error

	// ApplyBankInterest credits every account's bank balance by 5% in a
	// single statement. Used by the interest worker.
	ApplyBankInterest(ctx context.Context) (int64, error)
}
