package domain

import "strings"

// PetIDPrefix marks item ids whose Data payload is a pet
// ({name, happy, hunger, id}).
const PetIDPrefix = "pet_"

// ItemData is the open key-value payload attached to owned items. Its schema
// depends on the item id: pets carry {name, happy, hunger, id}, consumable
// effects carry {multiplier, duration}. Values survive a JSON round trip, so
// numbers read back as float64.
type ItemData map[string]any

// Int reads a numeric field, tolerating the float64 that JSON decoding
// produces.
func (d ItemData) Int(key string) (int, bool) {
	switch v := d[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Float64 reads a numeric field as float64.
func (d ItemData) Float64(key string) (float64, bool) {
	switch v := d[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// String reads a string field.
func (d ItemData) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Clone returns a shallow copy with its own map. Nested maps are copied one
// level deep, which covers every payload shape the catalog produces.
func (d ItemData) Clone() ItemData {
	if d == nil {
		return nil
	}
	out := make(ItemData, len(d))
	for k, v := range d {
		if nested, ok := v.(map[string]any); ok {
			inner := make(map[string]any, len(nested))
			for nk, nv := range nested {
				inner[nk] = nv
			}
			out[k] = inner
			continue
		}
		out[k] = v
	}
	return out
}

// ShopItem is a single catalog entry or owned inventory item. Identity fields
// (Name, Price, Description, ItemID, Emoji) are immutable by convention once
// constructed; only Data mutates, and only through the remove-old/add-new
// inventory protocol.
type ShopItem struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"` // display units
	Description string   `json:"description"`
	ItemID      string   `json:"item_id,omitempty"` // empty for legacy non-stackable goods
	Emoji       string   `json:"emoji,omitempty"`
	Data        ItemData `json:"data,omitempty"`
}

// NewShopItem constructs a validated catalog entry.
func NewShopItem(name string, price int, description, itemID, emoji string) (ShopItem, error) {
	if name == "" {
		return ShopItem{}, ErrEmptyName
	}
	if description == "" {
		return ShopItem{}, ErrEmptyDescription
	}
	if price <= 0 {
		return ShopItem{}, ErrInvalidPrice
	}
	return ShopItem{
		Name:        name,
		Price:       price,
		Description: description,
		ItemID:      itemID,
		Emoji:       emoji,
	}, nil
}

// IsPet reports whether the item's Data payload is a pet.
func (i ShopItem) IsPet() bool {
	return strings.HasPrefix(i.ItemID, PetIDPrefix)
}

// PetID returns the generated unique token that disambiguates pet instances
// of the same species.
func (i ShopItem) PetID() string {
	if i.Data == nil {
		return ""
	}
	id, _ := i.Data.String("id")
	return id
}

// SameCatalogEntry reports whether two items refer to the same catalog entry:
// by item id when present, by name for legacy items with an empty id.
func (i ShopItem) SameCatalogEntry(other ShopItem) bool {
	if i.ItemID != "" || other.ItemID != "" {
		return i.ItemID == other.ItemID
	}
	return i.Name == other.Name
}

// Clone returns a copy with an independent Data payload. Buying from the
// catalog always clones so owned copies never alias catalog state.
func (i ShopItem) Clone() ShopItem {
	out := i
	out.Data = i.Data.Clone()
	return out
}
