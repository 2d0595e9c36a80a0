package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/srstore/storefront-backend/internal/domain"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/store"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrProductMissing means a stored cart line points at a product id
	// the store no longer resolves. Products are never deleted, so this
	// is a data-integrity failure, not a user error.
	ErrProductMissing = errors.New("cart item references a missing product")
)

type CartService interface {
	// GetCartItems returns every line of the session's cart joined with
	// its product's current data, in insertion order.
	GetCartItems(ctx context.Context, sessionID string) ([]domain.CartItemWithProduct, error)

	// AddToCart merges quantity into the session's existing line for the
	// product, or creates one. quantity must be >= 1.
	AddToCart(ctx context.Context, sessionID string, productID, quantity int) (domain.CartItem, error)

	// UpdateCartItem sets the line's quantity. quantity <= 0 removes the
	// line and returns (nil, nil) as the removal signal; removing an id
	// that does not exist is still a no-op, not an error.
	UpdateCartItem(ctx context.Context, id, quantity int) (*domain.CartItem, error)

	// RemoveFromCart deletes the line unconditionally and reports
	// whether it existed.
	RemoveFromCart(ctx context.Context, id int) bool

	// ClearCart empties the session's cart. Always true, even when the
	// cart was already empty.
	ClearCart(ctx context.Context, sessionID string) bool

	// CartTotal sums price x quantity over resolved lines, rendered
	// with two decimals. Order of the lines does not matter.
	CartTotal(items []domain.CartItemWithProduct) string
}

type cartService struct {
	store store.Store
	log   *logger.Logger
}

func NewCartService(st store.Store, log *logger.Logger) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{store: st, log: serviceLog}
}

func (cs *cartService) GetCartItems(ctx context.Context, sessionID string) ([]domain.CartItemWithProduct, error) {
	items := cs.store.CartItemsBySession(sessionID)

	out := make([]domain.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		product, ok := cs.store.GetProduct(item.ProductID)
		if !ok {
			cs.log.Error("Cart item points at unresolvable product", "cart_item_id", item.ID, "product_id", item.ProductID, "session_id", sessionID)
			return nil, fmt.Errorf("resolve product %d: %w", item.ProductID, ErrProductMissing)
		}
		out = append(out, domain.CartItemWithProduct{CartItem: item, Product: product})
	}
	return out, nil
}

func (cs *cartService) AddToCart(ctx context.Context, sessionID string, productID, quantity int) (domain.CartItem, error) {
	if quantity < 1 {
		return domain.CartItem{}, ErrInvalidQuantity
	}
	if _, ok := cs.store.GetProduct(productID); !ok {
		return domain.CartItem{}, ErrProductNotFound
	}

	item := cs.store.AddCartItem(sessionID, productID, quantity)
	cs.log.Debug("Added to cart", "cart_item_id", item.ID, "product_id", productID, "quantity", item.Quantity, "session_id", sessionID)
	return item, nil
}

func (cs *cartService) UpdateCartItem(ctx context.Context, id, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		removed := cs.store.DeleteCartItem(id)
		cs.log.Debug("Removed cart item via zero quantity", "cart_item_id", id, "existed", removed)
		return nil, nil
	}

	item, ok := cs.store.SetCartItemQuantity(id, quantity)
	if !ok {
		return nil, ErrCartItemNotFound
	}
	return &item, nil
}

func (cs *cartService) RemoveFromCart(ctx context.Context, id int) bool {
	return cs.store.DeleteCartItem(id)
}

func (cs *cartService) ClearCart(ctx context.Context, sessionID string) bool {
	removed := cs.store.DeleteCartItemsBySession(sessionID)
	cs.log.Debug("Cleared cart", "session_id", sessionID, "removed", removed)
	return true
}

func (cs *cartService) CartTotal(items []domain.CartItemWithProduct) string {
	total := decimal.Zero
	for _, item := range items {
		price, err := decimal.NewFromString(item.Product.Price)
		if err != nil {
			cs.log.Warn("Skipping unparseable price in cart total", "cart_item_id", item.ID, "price", item.Product.Price)
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.StringFixed(2)
}
