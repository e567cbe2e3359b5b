package economy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/unseeyou/everything-bot/internal/domain"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/metrics"
)

func newPetID() string {
	return uuid.NewString()
}

// Buy resolves an item against the catalog, checks the wallet, then debits
// and adds the item. Pet templates get a fresh instance payload so two
// purchases of the same species are distinct pets. Rejections leave the
// account untouched.
func (s *service) Buy(ctx context.Context, userID, itemNameOrID string) (domain.ShopItem, error) {
	log := logger.FromContext(ctx)

	template, ok := s.shop.Find(itemNameOrID)
	if !ok {
		metrics.RecordTransaction("buy", false)
		return domain.ShopItem{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemNameOrID)
	}

	acct, err := s.load(ctx, userID)
	if err != nil {
		return domain.ShopItem{}, err
	}

	price := domain.MoneyFromCoins(template.Price)
	if acct.Wallet < price {
		metrics.RecordTransaction("buy", false)
		return domain.ShopItem{}, fmt.Errorf("%w: %s costs %s, wallet has %s",
			domain.ErrInsufficientFunds, template.Name, price, acct.Wallet)
	}

	item := template.Clone()
	if item.IsPet() {
		item.Data = domain.ItemData{
			"id":     s.petID(),
			"name":   domain.PetDefaultName,
			"happy":  domain.PetDefaultHappy,
			"hunger": domain.PetDefaultHunger,
		}
	}

	acct.Inventory.Add(item)
	if err := s.editWallet(ctx, acct, -price); err != nil {
		return domain.ShopItem{}, err
	}

	metrics.RecordTransaction("buy", true)
	metrics.MoneyMovedCents.WithLabelValues("buy").Add(float64(price))
	log.Info("Item bought", "user_id", userID, "item", item.Name, "price", price)
	return item, nil
}
