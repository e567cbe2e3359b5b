package domain

import (
	"encoding/json"
	"fmt"
)

// InventoryBlobVersion tags the serialized inventory envelope so the format
// can evolve without breaking stored rows.
const InventoryBlobVersion = 1

// Inventory is the ordered multiset of items one user owns. Insertion order
// is preserved for display but carries no meaning. Mutations do not persist
// anything on their own; the owning account writes the whole aggregate back
// after every edit.
type Inventory struct {
	items []ShopItem
}

// NewInventory builds an inventory over the given items.
func NewInventory(items ...ShopItem) *Inventory {
	return &Inventory{items: items}
}

// Items returns the owned items in insertion order.
func (inv *Inventory) Items() []ShopItem {
	return inv.items
}

// Len returns the number of owned items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Add appends an item. Duplicates are allowed; a user may own any number of
// copies of the same catalog entry.
func (inv *Inventory) Add(item ShopItem) {
	inv.items = append(inv.items, item)
}

// Remove deletes the first entry matching the identity rule: pets match by
// their generated data id, everything else by name. Removing an absent item
// is a no-op and returns false.
func (inv *Inventory) Remove(item ShopItem) bool {
	for idx, owned := range inv.items {
		if !matches(owned, item) {
			continue
		}
		inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
		return true
	}
	return false
}

// RemoveByName deletes one unit of the named item, if present.
func (inv *Inventory) RemoveByName(name string) bool {
	return inv.Remove(ShopItem{Name: name})
}

func matches(owned, target ShopItem) bool {
	if target.IsPet() {
		return owned.PetID() != "" && owned.PetID() == target.PetID()
	}
	return owned.Name == target.Name
}

// FindPet returns the pet item with the given instance id.
func (inv *Inventory) FindPet(petID string) (ShopItem, bool) {
	if petID == "" {
		return ShopItem{}, false
	}
	for _, item := range inv.items {
		if item.IsPet() && item.PetID() == petID {
			return item, true
		}
	}
	return ShopItem{}, false
}

// Pets returns all pet items in insertion order.
func (inv *Inventory) Pets() []ShopItem {
	var pets []ShopItem
	for _, item := range inv.items {
		if item.IsPet() {
			pets = append(pets, item)
		}
	}
	return pets
}

// Count returns how many units of the named item the user owns.
func (inv *Inventory) Count(name string) int {
	n := 0
	for _, item := range inv.items {
		if item.Name == name {
			n++
		}
	}
	return n
}

// inventoryEnvelope is the versioned on-disk form of an inventory.
type inventoryEnvelope struct {
	Version int        `json:"v"`
	Items   []ShopItem `json:"items"`
}

// MarshalBlob serializes the inventory to the versioned text blob stored
// alongside the balance columns. Round-tripping through InventoryFromBlob
// reproduces an equivalent sequence; the repository relies on this contract.
func (inv *Inventory) MarshalBlob() (string, error) {
	env := inventoryEnvelope{Version: InventoryBlobVersion, Items: inv.items}
	b, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal inventory: %w", err)
	}
	return string(b), nil
}

// InventoryFromBlob parses a stored inventory blob. Empty blobs (fresh
// accounts) decode to an empty inventory.
func InventoryFromBlob(blob string) (*Inventory, error) {
	if blob == "" {
		return NewInventory(), nil
	}
	var env inventoryEnvelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		return nil, fmt.Errorf("failed to parse inventory blob: %w", err)
	}
	if env.Version != InventoryBlobVersion {
		return nil, fmt.Errorf("unsupported inventory blob version %d", env.Version)
	}
	return NewInventory(env.Items...), nil
}
