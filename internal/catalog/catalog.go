// Package catalog holds the static shop and job definitions. Catalogs are
// process-wide read-only configuration: constructed once at startup, injected
// into the services that resolve purchases against them, and never mutated at
// runtime.
package catalog

import (
	"fmt"
	"strings"

	"github.com/unseeyou/everything-bot/internal/domain"
)

// MaxItems caps the shop at the 25 entries a Discord select menu can show.
// Exceeding it is a startup error, never a silent truncation.
const MaxItems = 25

// Catalog is an ordered, immutable sequence of purchasable items.
type Catalog struct {
	name  string
	items []domain.ShopItem
}

// New builds a catalog, failing fast when the item cap is exceeded.
func New(name string, items []domain.ShopItem) (*Catalog, error) {
	if len(items) > MaxItems {
		return nil, fmt.Errorf("%w: got %d", domain.ErrCatalogFull, len(items))
	}
	return &Catalog{name: name, items: items}, nil
}

// Name returns the catalog's display name.
func (c *Catalog) Name() string {
	return c.name
}

// Items returns the catalog entries in display order.
func (c *Catalog) Items() []domain.ShopItem {
	return c.items
}

// Find resolves a catalog entry by case-insensitive name or exact item id.
func (c *Catalog) Find(nameOrID string) (domain.ShopItem, bool) {
	for _, item := range c.items {
		if strings.EqualFold(item.Name, nameOrID) || (item.ItemID != "" && item.ItemID == nameOrID) {
			return item, true
		}
	}
	return domain.ShopItem{}, false
}
