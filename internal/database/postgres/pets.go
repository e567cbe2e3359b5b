package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PetRepository implements the pets repository for PostgreSQL
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a new PetRepository
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

// GetCurrentPet returns the selected pet id, "" when none is selected.
func (r *PetRepository) GetCurrentPet(ctx context.Context, userID string) (string, error) {
	query := `SELECT pet_id FROM pets WHERE user_id = $1`

	var petID string
	err := r.db.QueryRow(ctx, query, userID).Scan(&petID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current pet: %w", err)
	}
	return petID, nil
}

// SetCurrentPet stores the selected pet id.
func (r *PetRepository) SetCurrentPet(ctx context.Context, userID, petID string) error {
	query := `
		INSERT INTO pets (user_id, pet_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET pet_id = EXCLUDED.pet_id
	`

	if _, err := r.db.Exec(ctx, query, userID, petID); err != nil {
		return fmt.Errorf("failed to set current pet: %w", err)
	}
	return nil
}
