// Package pet layers behavior on top of pet inventory items. A pet IS its
// inventory item; the service takes the owning account's store explicitly
// instead of holding a back-reference, and every mutation goes through the
// remove-old/add-new protocol so the serialized inventory stays consistent.
package pet

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/unseeyou/everything-bot/internal/catalog"
	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/repository"
)

const (
	// FeedAmountMin and FeedAmountMax bound how much hunger one serving of
	// pet food removes.
	FeedAmountMin = 1
	FeedAmountMax = 5

	// PlayGainMin and PlayGainMax bound the happiness gained per play.
	PlayGainMin = 1
	PlayGainMax = 5
	// PlayHungerCost is the hunger budget one play session consumes.
	PlayHungerCost = 2
)

// FeedResult reports one feeding.
type FeedResult struct {
	Pet    domain.Pet
	Amount int
}

// PlayResult reports one play session.
type PlayResult struct {
	Pet  domain.Pet
	Gain int
}

// Service defines pet operations.
type Service interface {
	// Select marks the pet with the given instance id as the user's
	// current pet.
	Select(ctx context.Context, userID, petID string) (domain.Pet, error)
	// Current returns the user's selected pet.
	Current(ctx context.Context, userID string) (domain.Pet, error)
	// List returns every pet the user owns, in acquisition order.
	List(ctx context.Context, userID string) ([]domain.Pet, error)
	// Feed consumes one Pet food item and lowers the pet's hunger.
	Feed(ctx context.Context, userID string) (*FeedResult, error)
	// Play raises the pet's happiness if it is not too hungry.
	Play(ctx context.Context, userID string) (*PlayResult, error)
	// Rename consumes one Name Tag and renames the pet.
	Rename(ctx context.Context, userID, newName string) (domain.Pet, error)
}

type service struct {
	accounts repository.Economy
	pets     repository.Pets
	randInt  func(min, max int) int
}

// NewService creates a new pet service.
func NewService(accounts repository.Economy, pets repository.Pets) Service {
	return &service{
		accounts: accounts,
		pets:     pets,
		randInt:  defaultRandInt,
	}
}

func defaultRandInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

// loadInventory reads and decodes the user's inventory along with the
// balances needed for the write-back.
func (s *service) loadInventory(ctx context.Context, userID string) (domain.Money, domain.Money, *domain.Inventory, error) {
	wallet, bank, blob, err := s.accounts.GetAccount(ctx, userID)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to load account: %w", err)
	}
	inventory, err := domain.InventoryFromBlob(blob)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode inventory for %s: %w", userID, err)
	}
	return wallet, bank, inventory, nil
}

func (s *service) saveInventory(ctx context.Context, userID string, wallet, bank domain.Money, inventory *domain.Inventory) error {
	blob, err := inventory.MarshalBlob()
	if err != nil {
		return err
	}
	if err := s.accounts.PutAccount(ctx, userID, wallet, bank, blob); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// currentPetItem resolves the selected-pet pointer to the owned item.
func (s *service) currentPetItem(ctx context.Context, inventory *domain.Inventory, userID string) (domain.ShopItem, error) {
	petID, err := s.pets.GetCurrentPet(ctx, userID)
	if err != nil {
		return domain.ShopItem{}, fmt.Errorf("failed to get current pet: %w", err)
	}
	if petID == "" {
		return domain.ShopItem{}, domain.ErrNoPetSelected
	}
	item, ok := inventory.FindPet(petID)
	if !ok {
		// Pointer survived the pet it referenced (sold, traded away).
		return domain.ShopItem{}, fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
	}
	return item, nil
}

func (s *service) Select(ctx context.Context, userID, petID string) (domain.Pet, error) {
	_, _, inventory, err := s.loadInventory(ctx, userID)
	if err != nil {
		return domain.Pet{}, err
	}
	item, ok := inventory.FindPet(petID)
	if !ok {
		return domain.Pet{}, fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
	}
	if err := s.pets.SetCurrentPet(ctx, userID, petID); err != nil {
		return domain.Pet{}, fmt.Errorf("failed to set current pet: %w", err)
	}
	pet, _ := domain.PetFromItem(item)
	logger.FromContext(ctx).Info("Pet selected", "user_id", userID, "pet_id", petID, "name", pet.Name)
	return pet, nil
}

func (s *service) Current(ctx context.Context, userID string) (domain.Pet, error) {
	_, _, inventory, err := s.loadInventory(ctx, userID)
	if err != nil {
		return domain.Pet{}, err
	}
	item, err := s.currentPetItem(ctx, inventory, userID)
	if err != nil {
		return domain.Pet{}, err
	}
	pet, _ := domain.PetFromItem(item)
	return pet, nil
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Pet, error) {
	_, _, inventory, err := s.loadInventory(ctx, userID)
	if err != nil {
		return nil, err
	}
	var pets []domain.Pet
	for _, item := range inventory.Pets() {
		if pet, ok := domain.PetFromItem(item); ok {
			pets = append(pets, pet)
		}
	}
	return pets, nil
}

func (s *service) Feed(ctx context.Context, userID string) (*FeedResult, error) {
	wallet, bank, inventory, err := s.loadInventory(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.currentPetItem(ctx, inventory, userID)
	if err != nil {
		return nil, err
	}
	if inventory.Count(catalog.ItemPetFood) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, catalog.ItemPetFood)
	}

	pet, _ := domain.PetFromItem(item)
	amount := s.randInt(FeedAmountMin, FeedAmountMax)
	pet.Feed(amount)

	inventory.RemoveByName(catalog.ItemPetFood)
	inventory.Remove(item)
	inventory.Add(pet.ApplyTo(item))
	if err := s.saveInventory(ctx, userID, wallet, bank, inventory); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Pet fed", "user_id", userID, "pet_id", pet.ID, "amount", amount, "hunger", pet.Hunger)
	return &FeedResult{Pet: pet, Amount: amount}, nil
}

func (s *service) Play(ctx context.Context, userID string) (*PlayResult, error) {
	wallet, bank, inventory, err := s.loadInventory(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.currentPetItem(ctx, inventory, userID)
	if err != nil {
		return nil, err
	}

	pet, _ := domain.PetFromItem(item)
	gain := s.randInt(PlayGainMin, PlayGainMax)
	if err := pet.Play(gain, PlayHungerCost); err != nil {
		return nil, err
	}

	inventory.Remove(item)
	inventory.Add(pet.ApplyTo(item))
	if err := s.saveInventory(ctx, userID, wallet, bank, inventory); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Pet played", "user_id", userID, "pet_id", pet.ID, "gain", gain, "happy", pet.Happy)
	return &PlayResult{Pet: pet, Gain: gain}, nil
}

func (s *service) Rename(ctx context.Context, userID, newName string) (domain.Pet, error) {
	wallet, bank, inventory, err := s.loadInventory(ctx, userID)
	if err != nil {
		return domain.Pet{}, err
	}
	item, err := s.currentPetItem(ctx, inventory, userID)
	if err != nil {
		return domain.Pet{}, err
	}
	if inventory.Count(catalog.ItemNameTag) == 0 {
		return domain.Pet{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, catalog.ItemNameTag)
	}

	pet, _ := domain.PetFromItem(item)
	if err := pet.SetName(newName); err != nil {
		return domain.Pet{}, err
	}

	inventory.RemoveByName(catalog.ItemNameTag)
	inventory.Remove(item)
	inventory.Add(pet.ApplyTo(item))
	if err := s.saveInventory(ctx, userID, wallet, bank, inventory); err != nil {
		return domain.Pet{}, err
	}

	logger.FromContext(ctx).Info("Pet renamed", "user_id", userID, "pet_id", pet.ID, "name", pet.Name)
	return pet, nil
}
