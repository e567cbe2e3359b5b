package catalog

import (
	"fmt"

	"github.com/unseeyou/everything-bot/internal/domain"
)

// Item names referenced by the economy and pet services.
const (
	ItemPetFood = "Pet food"
	ItemNameTag = "Name Tag"
)

// Effect describes a consumable earnings multiplier. Duration is the
// remaining-use counter carried in the owned item's data payload.
type Effect struct {
	Multiplier float64
	Duration   int
}

// Effects maps effect item ids to their definitions.
var Effects = map[string]Effect{
	"2x_pot":  {Multiplier: 2, Duration: 8},
	"10x_pot": {Multiplier: 10, Duration: 8},
	"cookie":  {Multiplier: 1.2, Duration: 2},
}

// DefaultShop constructs the bot's shop. Purchased copies are cloned from
// these entries; effect items carry their multiplier payload from here, pet
// templates get a fresh instance payload at purchase time.
func DefaultShop() (*Catalog, error) {
	defs := []struct {
		name, description, itemID, emoji string
		price                            int
	}{
		{ItemPetFood, "Feed your pet some food if it is hungry.", "", "🍴", 5},
		{ItemNameTag, "Give your pet a name with this name tag.", "", "🏷️", 10},
		{"Dog", "Buy a dog to be your pet", "pet_dog", "🐶", 60},
		{"Cat", "Buy a cat to be your pet", "pet_cat", "🐈", 60},
		{"2X Income Potion", "Make more money. (works 8 times)", "2x_pot", "🍸", 100},
		{"10X Income Potion", "Make all the money. (works 8 times)", "10x_pot", "🍷", 500},
		{"Cookie", "Yummy.", "cookie", "🍪", 5},
	}

	items := make([]domain.ShopItem, 0, len(defs))
	for _, d := range defs {
		item, err := domain.NewShopItem(d.name, d.price, d.description, d.itemID, d.emoji)
		if err != nil {
			return nil, fmt.Errorf("invalid shop item %q: %w", d.name, err)
		}
		if effect, ok := Effects[item.ItemID]; ok {
			item.Data = domain.ItemData{
				"multiplier": effect.Multiplier,
				"duration":   effect.Duration,
			}
		}
		items = append(items, item)
	}

	return New("Shop", items)
}

// DefaultJobs constructs the job list. Salaries are display units per shift.
func DefaultJobs() ([]domain.Job, error) {
	defs := []struct {
		name, description string
		salary            int
	}{
		{"Taxi Driver", "Drive people around in a taxi", 100},
		{"Truck Driver", "Drive around in a truck, hauling goods", 100},
		{"Lawyer", "Get people out of prison sentences", 200},
		{"Police Officer", "Enforce the law", 200},
		{"Software Engineer", "Write code", 150},
		{"Chef", "Cook food", 100},
		{"Doctor", "Heal people", 200},
		{"Emergency Services", "Help people in an emergency", 200},
		{"Firefighter", "Fight fires", 150},
		{"Office Worker", "Work in an office", 125},
	}

	jobs := make([]domain.Job, 0, len(defs))
	for _, d := range defs {
		job, err := domain.NewJob(d.name, d.description, d.salary)
		if err != nil {
			return nil, fmt.Errorf("invalid job %q: %w", d.name, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// JobByName resolves a job by name. The Unemployed sentinel resolves to
// itself so stored rows round-trip.
func JobByName(jobs []domain.Job, name string) (domain.Job, bool) {
	if name == domain.Unemployed.Name {
		return domain.Unemployed, true
	}
	for _, job := range jobs {
		if job.Name == name {
			return job, true
		}
	}
	return domain.Job{}, false
}
