package store

import "testing"

func TestSeedLoadsSampleCatalog(t *testing.T) {
	s := newTestStore(t)

	if err := s.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	products := s.Products()
	if len(products) != 6 {
		t.Fatalf("seeded products: got %d, want 6", len(products))
	}

	first := products[0]
	if first.ID != 1 || first.Name != "Smart Fitness Pro" {
		t.Fatalf("first seeded product: %+v", first)
	}
	if first.Price != "299.00" || first.OriginalPrice != "399.00" {
		t.Fatalf("first seeded prices: price=%q originalPrice=%q", first.Price, first.OriginalPrice)
	}
	if first.StockCount == nil || *first.StockCount != 15 {
		t.Fatalf("first seeded stockCount: %v", first.StockCount)
	}
	if len(first.Features) != 4 || len(first.Specifications) != 4 {
		t.Fatalf("first seeded features/specifications: %d/%d", len(first.Features), len(first.Specifications))
	}

	categories := map[string]int{}
	badges := map[string]int{}
	for _, p := range products {
		categories[p.Category]++
		if p.Badge != "" {
			badges[p.Badge]++
		}
	}
	if categories["smartwatches"] != 2 || categories["headphones"] != 2 || categories["accessories"] != 2 {
		t.Fatalf("seeded categories: %v", categories)
	}
	if badges["Hot"] != 1 || badges["Limited"] != 1 {
		t.Fatalf("seeded badges: %v", badges)
	}
}
