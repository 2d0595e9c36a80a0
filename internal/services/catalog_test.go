package services

import (
	"context"
	"testing"

	"github.com/srstore/storefront-backend/internal/domain"
	"github.com/srstore/storefront-backend/internal/store"
	"github.com/srstore/storefront-backend/internal/testutil"
)

func newCatalogFixture(t *testing.T) (CatalogService, store.Store) {
	t.Helper()
	st := store.NewMemStore(testutil.Logger(t))

	inputs := []domain.ProductInput{
		{Name: "Smart Fitness Pro", Description: "Advanced fitness tracking watch.", Price: "299.00", Category: "smartwatches", Rating: "4.8"},
		{Name: "Wireless Pro Max", Description: "Premium noise-canceling headphones.", Price: "249.00", Category: "headphones", Rating: "4.9"},
		{Name: "Tech Essentials Kit", Description: "Bundle with wireless charger and stand.", Price: "89.00", Category: "accessories", Rating: "4.7"},
		{Name: "True Wireless Pro", Description: "Crystal clear audio earbuds.", Price: "149.00", Category: "headphones", Rating: "4.8"},
	}
	for _, in := range inputs {
		st.CreateProduct(in)
	}
	return NewCatalogService(st, testutil.Logger(t)), st
}

func names(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func equalNames(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListProductsNoFilter(t *testing.T) {
	svc, _ := newCatalogFixture(t)

	got := svc.ListProducts(context.Background(), ProductFilter{})
	if len(got) != 4 {
		t.Fatalf("unfiltered listing: got %d, want 4", len(got))
	}
	if got[0].Name != "Smart Fitness Pro" || got[3].Name != "True Wireless Pro" {
		t.Fatalf("listing order: %v", names(got))
	}
}

func TestListProductsCategoryIsExactAndCaseSensitive(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	ctx := context.Background()

	got := svc.ListProducts(ctx, ProductFilter{Category: "headphones"})
	if !equalNames(names(got), []string{"Wireless Pro Max", "True Wireless Pro"}) {
		t.Fatalf("category filter: %v", names(got))
	}

	if got := svc.ListProducts(ctx, ProductFilter{Category: "Headphones"}); len(got) != 0 {
		t.Fatalf("category should be case-sensitive, got %v", names(got))
	}
}

func TestListProductsSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	ctx := context.Background()

	got := svc.ListProducts(ctx, ProductFilter{Search: "WIRELESS"})
	want := []string{"Wireless Pro Max", "Tech Essentials Kit", "True Wireless Pro"}
	if !equalNames(names(got), want) {
		t.Fatalf("search over name+description: got %v, want %v", names(got), want)
	}

	// category text is searchable too
	got = svc.ListProducts(ctx, ProductFilter{Search: "smartwatch"})
	if !equalNames(names(got), []string{"Smart Fitness Pro"}) {
		t.Fatalf("search over category: %v", names(got))
	}
}

func TestListProductsCombinesFiltersWithAND(t *testing.T) {
	svc, _ := newCatalogFixture(t)

	got := svc.ListProducts(context.Background(), ProductFilter{Category: "headphones", Search: "wireless"})
	if !equalNames(names(got), []string{"Wireless Pro Max", "True Wireless Pro"}) {
		t.Fatalf("AND-composed filter: %v", names(got))
	}

	got = svc.ListProducts(context.Background(), ProductFilter{Category: "accessories", Search: "earbuds"})
	if len(got) != 0 {
		t.Fatalf("AND-composed filter should exclude: %v", names(got))
	}
}

func TestGetProduct(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	ctx := context.Background()

	p, ok := svc.GetProduct(ctx, 1)
	if !ok || p.Name != "Smart Fitness Pro" {
		t.Fatalf("GetProduct(1): ok=%v p=%+v", ok, p)
	}
	if _, ok := svc.GetProduct(ctx, 99); ok {
		t.Fatalf("GetProduct(99): expected absence")
	}
}

func TestSortProductsPriceAscThenDescReverses(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	products := svc.ListProducts(context.Background(), ProductFilter{})

	asc := svc.SortProducts(products, SortPriceAsc)
	wantAsc := []string{"Tech Essentials Kit", "True Wireless Pro", "Wireless Pro Max", "Smart Fitness Pro"}
	if !equalNames(names(asc), wantAsc) {
		t.Fatalf("price-asc: got %v, want %v", names(asc), wantAsc)
	}

	desc := svc.SortProducts(asc, SortPriceDesc)
	for i := range asc {
		if desc[i].ID != asc[len(asc)-1-i].ID {
			t.Fatalf("price-desc should reverse price-asc for distinct prices: asc=%v desc=%v", names(asc), names(desc))
		}
	}
}

func TestSortProductsRatingDescendingAbsentIsZero(t *testing.T) {
	st := store.NewMemStore(testutil.Logger(t))
	st.CreateProduct(domain.ProductInput{Name: "Unrated", Price: "10.00"})
	st.CreateProduct(domain.ProductInput{Name: "Low", Price: "10.00", Rating: "3.1"})
	st.CreateProduct(domain.ProductInput{Name: "High", Price: "10.00", Rating: "4.9"})
	svc := NewCatalogService(st, testutil.Logger(t))

	got := svc.SortProducts(svc.ListProducts(context.Background(), ProductFilter{}), SortRating)
	want := []string{"High", "Low", "Unrated"}
	if !equalNames(names(got), want) {
		t.Fatalf("rating sort: got %v, want %v", names(got), want)
	}
}

func TestSortProductsNewestReversesOrder(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	products := svc.ListProducts(context.Background(), ProductFilter{})

	got := svc.SortProducts(products, SortNewest)
	for i := range products {
		if got[i].ID != products[len(products)-1-i].ID {
			t.Fatalf("newest should reverse: %v", names(got))
		}
	}
}

func TestSortProductsFeaturedKeepsOrder(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	products := svc.ListProducts(context.Background(), ProductFilter{})

	for _, key := range []SortKey{SortFeatured, SortKey(""), SortKey("bogus")} {
		got := svc.SortProducts(products, key)
		if !equalNames(names(got), names(products)) {
			t.Fatalf("sort %q should keep order: %v", key, names(got))
		}
	}
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	svc, _ := newCatalogFixture(t)
	products := svc.ListProducts(context.Background(), ProductFilter{})
	before := names(products)

	_ = svc.SortProducts(products, SortPriceAsc)
	if !equalNames(names(products), before) {
		t.Fatalf("input slice reordered: %v", names(products))
	}
}

func TestSortProductsStableOnEqualPrices(t *testing.T) {
	st := store.NewMemStore(testutil.Logger(t))
	st.CreateProduct(domain.ProductInput{Name: "A", Price: "10.00"})
	st.CreateProduct(domain.ProductInput{Name: "B", Price: "10.00"})
	st.CreateProduct(domain.ProductInput{Name: "C", Price: "5.00"})
	svc := NewCatalogService(st, testutil.Logger(t))

	got := svc.SortProducts(svc.ListProducts(context.Background(), ProductFilter{}), SortPriceAsc)
	want := []string{"C", "A", "B"}
	if !equalNames(names(got), want) {
		t.Fatalf("stable price sort: got %v, want %v", names(got), want)
	}
}

func TestSortProductsMalformedPriceComparesEqual(t *testing.T) {
	st := store.NewMemStore(testutil.Logger(t))
	st.CreateProduct(domain.ProductInput{Name: "Broken1", Price: "not-a-price"})
	st.CreateProduct(domain.ProductInput{Name: "Broken2", Price: ""})
	svc := NewCatalogService(st, testutil.Logger(t))

	got := svc.SortProducts(svc.ListProducts(context.Background(), ProductFilter{}), SortPriceAsc)
	want := []string{"Broken1", "Broken2"}
	if !equalNames(names(got), want) {
		t.Fatalf("malformed prices should keep relative order: %v", names(got))
	}
}
