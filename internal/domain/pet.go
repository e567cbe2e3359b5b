package domain

import "unicode"

const (
	// PetMaxHappy caps happiness.
	PetMaxHappy = 100
	// PetPlayHungerThreshold is the hunger level at or above which a pet
	// refuses to play.
	PetPlayHungerThreshold = 12
	// PetMinNameLen is the minimum pet name length after filtering.
	PetMinNameLen = 2

	// PetDefaultName, PetDefaultHappy and PetDefaultHunger are the state a
	// freshly purchased pet starts with.
	PetDefaultName   = "Unnamed"
	PetDefaultHappy  = 50
	PetDefaultHunger = 0
)

// Pet is the typed view over a pet item's Data payload. It holds pure state
// transitions only; persistence goes through the remove-old/add-new inventory
// protocol so the serialized form stays consistent. The pet's identity across
// mutations is ID, never its position in the inventory.
type Pet struct {
	ID     string
	Name   string
	Happy  int
	Hunger int
}

// PetFromItem decodes a pet item's Data payload. Missing fields fall back to
// fresh-pet defaults so legacy rows stay readable.
func PetFromItem(item ShopItem) (Pet, bool) {
	if !item.IsPet() {
		return Pet{}, false
	}
	p := Pet{
		ID:     item.PetID(),
		Name:   PetDefaultName,
		Happy:  PetDefaultHappy,
		Hunger: PetDefaultHunger,
	}
	if name, ok := item.Data.String("name"); ok {
		p.Name = name
	}
	if happy, ok := item.Data.Int("happy"); ok {
		p.Happy = happy
	}
	if hunger, ok := item.Data.Int("hunger"); ok {
		p.Hunger = hunger
	}
	return p, true
}

// ApplyTo writes the pet state back into a copy of the given item.
func (p Pet) ApplyTo(item ShopItem) ShopItem {
	out := item.Clone()
	if out.Data == nil {
		out.Data = ItemData{}
	}
	out.Data["id"] = p.ID
	out.Data["name"] = p.Name
	out.Data["happy"] = p.Happy
	out.Data["hunger"] = p.Hunger
	return out
}

// Feed reduces hunger, floor-clamped at 0.
func (p *Pet) Feed(amount int) {
	p.Hunger -= amount
	if p.Hunger < 0 {
		p.Hunger = 0
	}
}

// Play raises happiness by gain (capped at PetMaxHappy) and costs hungerCost
// hunger budget. A pet at or above the play threshold refuses with no state
// change.
func (p *Pet) Play(gain, hungerCost int) error {
	if p.Hunger >= PetPlayHungerThreshold {
		return ErrPetTooHungry
	}
	p.Happy += gain
	if p.Happy > PetMaxHappy {
		p.Happy = PetMaxHappy
	}
	p.Hunger += hungerCost
	return nil
}

// Sadden lowers happiness, floor-clamped at 0. Working a shift saddens every
// owned pet.
func (p *Pet) Sadden(amount int) {
	p.Happy -= amount
	if p.Happy < 0 {
		p.Happy = 0
	}
}

// SetName renames the pet. The name is filtered to alphanumeric and space
// characters; the result must be at least PetMinNameLen long.
func (p *Pet) SetName(name string) error {
	filtered := filterPetName(name)
	if len([]rune(filtered)) < PetMinNameLen {
		return ErrPetNameTooShort
	}
	p.Name = filtered
	return nil
}

func filterPetName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}
