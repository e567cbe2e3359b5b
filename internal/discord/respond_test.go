package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unseeyou/everything-bot/internal/domain"
)

func TestItemLabel(t *testing.T) {
	tests := []struct {
		name string
		item domain.ShopItem
		want string
	}{
		{
			name: "plain item",
			item: domain.ShopItem{Name: "Pet food"},
			want: "Pet food",
		},
		{
			name: "named pet",
			item: domain.ShopItem{
				Name:   "Dog",
				ItemID: "pet_dog",
				Data:   domain.ItemData{"id": "p1", "name": "Rex"},
			},
			want: "Dog (Rex)",
		},
		{
			name: "pet without a stored name",
			item: domain.ShopItem{
				Name:   "Cat",
				ItemID: "pet_cat",
				Data:   domain.ItemData{"id": "p2"},
			},
			want: "Cat",
		},
		{
			name: "pet with empty name field",
			item: domain.ShopItem{
				Name:   "Cat",
				ItemID: "pet_cat",
				Data:   domain.ItemData{"id": "p3", "name": ""},
			},
			want: "Cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemLabel(tt.item))
		})
	}
}

func TestParseMemberList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain ids", "111 222", []string{"111", "222"}},
		{"mentions", "<@111> <@222>", []string{"111", "222"}},
		{"nickname mentions", "<@!111>", []string{"111"}},
		{"mixed", "<@111> 222", []string{"111", "222"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMemberList(tt.input))
		})
	}
}
