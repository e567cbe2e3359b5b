package repository

import "context"

// Pets stores the currently-selected-pet pointer per user. The pointer is the
// pet instance id carried in the owned item's data payload, not an inventory
// position.
type Pets interface {
	// GetCurrentPet returns the selected pet id, or "" when none is selected.
	GetCurrentPet(ctx context.Context, userID string) (string, error)
	SetCurrentPet(ctx context.Context, userID, petID string) error
}
