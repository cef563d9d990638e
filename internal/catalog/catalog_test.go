package catalog

import (
	"testing"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/shopspring/decimal"
)

func testCatalog() *Catalog {
	return New(Data{
		Currencies: []domain.Currency{{ID: domain.MainCurrency}, {ID: "forest"}},
		Locations: []domain.Location{
			{ID: "garden", CharacterID: "gardener", CurrencyID: "forest", UnlockLevel: 1},
			{ID: "mine", CharacterID: "miner", CurrencyID: "ore", UnlockLevel: 5},
		},
		Tools: []domain.Tool{
			{ID: "shovel", CharacterID: "gardener", UnlockLevel: 1, MaxLevel: 3},
		},
		Levels: []domain.LevelDef{
			{Level: 1, ExpToNext: 100},
			{Level: 2, ExpToNext: 200},
			{Level: 3},
		},
		Ranks: []domain.Rank{
			{ID: 2, MinPoints: 100},
			{ID: 1, MinPoints: 0},
		},
		StorageLevels: []domain.StorageLevel{
			{LocationID: "garden", Level: 1, Capacity: decimal.NewFromInt(100)},
		},
	})
}

func TestLookupMissing(t *testing.T) {
	c := testCatalog()
	if _, err := c.Location("nowhere"); err != domain.ErrNotFound {
		t.Fatalf("Location miss = %v; want ErrNotFound", err)
	}
	if _, err := c.Tool("hammer"); err != domain.ErrNotFound {
		t.Fatalf("Tool miss = %v; want ErrNotFound", err)
	}
	if _, err := c.StorageLevel("garden", 99); err != domain.ErrNotFound {
		t.Fatalf("StorageLevel miss = %v; want ErrNotFound", err)
	}
}

func TestExpToNext(t *testing.T) {
	c := testCatalog()
	if need, ok := c.ExpToNext(1); !ok || need != 100 {
		t.Fatalf("ExpToNext(1) = (%d, %v); want (100, true)", need, ok)
	}
	// level 3 is the top of the ladder
	if _, ok := c.ExpToNext(3); ok {
		t.Fatal("ExpToNext(3) should report end of ladder")
	}
}

func TestRanksSorted(t *testing.T) {
	ranks := testCatalog().Ranks()
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1].MinPoints > ranks[i].MinPoints {
			t.Fatalf("ranks not sorted: %v", ranks)
		}
	}
}

func TestStarterSets(t *testing.T) {
	c := testCatalog()
	if locs := c.StarterLocations(); len(locs) != 1 || locs[0].ID != "garden" {
		t.Fatalf("StarterLocations = %v; want [garden]", locs)
	}
	if tools := c.StarterTools(); len(tools) != 1 || tools[0].ID != "shovel" {
		t.Fatalf("StarterTools = %v; want [shovel]", tools)
	}
}
