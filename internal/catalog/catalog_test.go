package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unseeyou/everything-bot/internal/domain"
)

func TestNew_RejectsOversizedCatalog(t *testing.T) {
	items := make([]domain.ShopItem, MaxItems+1)
	for i := range items {
		items[i] = domain.ShopItem{Name: fmt.Sprintf("Item %d", i), Price: 1, Description: "x"}
	}

	_, err := New("Shop", items)
	assert.ErrorIs(t, err, domain.ErrCatalogFull)
}

func TestNew_AcceptsExactlyMaxItems(t *testing.T) {
	items := make([]domain.ShopItem, MaxItems)
	for i := range items {
		items[i] = domain.ShopItem{Name: fmt.Sprintf("Item %d", i), Price: 1, Description: "x"}
	}

	c, err := New("Shop", items)
	require.NoError(t, err)
	assert.Len(t, c.Items(), MaxItems)
}

func TestFind(t *testing.T) {
	shop, err := DefaultShop()
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		wantName string
		wantOK   bool
	}{
		{"exact name", "Dog", "Dog", true},
		{"case insensitive", "pet food", "Pet food", true},
		{"by item id", "2x_pot", "2X Income Potion", true},
		{"unknown", "Dragon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := shop.Find(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, item.Name)
			}
		})
	}
}

func TestDefaultShop(t *testing.T) {
	shop, err := DefaultShop()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(shop.Items()), MaxItems)

	// Pet templates carry no instance payload; that is minted at purchase.
	dog, ok := shop.Find("Dog")
	require.True(t, ok)
	assert.True(t, dog.IsPet())
	assert.Nil(t, dog.Data)

	// Effect items carry their multiplier payload from the catalog.
	potion, ok := shop.Find("10X Income Potion")
	require.True(t, ok)
	mult, ok := potion.Data.Float64("multiplier")
	require.True(t, ok)
	assert.Equal(t, float64(10), mult)
	duration, ok := potion.Data.Int("duration")
	require.True(t, ok)
	assert.Equal(t, 8, duration)
}

func TestDefaultJobs(t *testing.T) {
	jobs, err := DefaultJobs()
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	taxi, ok := JobByName(jobs, "Taxi Driver")
	require.True(t, ok)
	// Salaries convert to minor units at construction: 100 coins/shift.
	assert.Equal(t, domain.Money(10000), taxi.Salary)
}

func TestJobByName_UnemployedSentinel(t *testing.T) {
	jobs, err := DefaultJobs()
	require.NoError(t, err)

	job, ok := JobByName(jobs, domain.Unemployed.Name)
	require.True(t, ok)
	assert.True(t, job.IsUnemployed())

	_, ok = JobByName(jobs, "Astronaut")
	assert.False(t, ok)
}
