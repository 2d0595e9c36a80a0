package services

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/srstore/storefront-backend/internal/domain"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/store"
)

// ProductFilter narrows a catalog listing. Category is an exact,
// case-sensitive match; Search is a case-insensitive substring match
// against name, description and category. Both combine with AND; zero
// values impose no restriction.
type ProductFilter struct {
	Category string
	Search   string
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter ProductFilter) []domain.Product
	GetProduct(ctx context.Context, id int) (domain.Product, bool)
	SortProducts(products []domain.Product, key SortKey) []domain.Product
}

type catalogService struct {
	store store.Store
	log   *logger.Logger
}

func NewCatalogService(st store.Store, log *logger.Logger) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{store: st, log: serviceLog}
}

func (cs *catalogService) ListProducts(ctx context.Context, filter ProductFilter) []domain.Product {
	all := cs.store.Products()

	term := strings.ToLower(filter.Search)
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p domain.Product, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredTerm) ||
		strings.Contains(strings.ToLower(p.Description), loweredTerm) ||
		strings.Contains(strings.ToLower(p.Category), loweredTerm)
}

func (cs *catalogService) GetProduct(ctx context.Context, id int) (domain.Product, bool) {
	return cs.store.GetProduct(id)
}

// SortProducts returns a sorted copy; the input slice is never
// reordered. All sorts are stable so equal-key products keep their
// relative order. "newest" reverses the given order, leaning on the
// store handing out monotonically increasing ids.
func (cs *catalogService) SortProducts(products []domain.Product, key SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return comparePrices(out[i].Price, out[j].Price) < 0
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return comparePrices(out[i].Price, out[j].Price) > 0
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return ratingOf(out[i]).GreaterThan(ratingOf(out[j]))
		})
	case SortNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	default:
		// featured and unknown keys keep the incoming order
	}
	return out
}

// comparePrices orders two exact-string prices numerically. A price
// that fails to parse compares equal to everything, so malformed data
// degrades to "no reordering" instead of panicking mid-sort.
func comparePrices(a, b string) int {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA != nil || errB != nil {
		return 0
	}
	return da.Cmp(db)
}

func ratingOf(p domain.Product) decimal.Decimal {
	if p.Rating == "" {
		return decimal.Zero
	}
	r, err := decimal.NewFromString(p.Rating)
	if err != nil {
		return decimal.Zero
	}
	return r
}
