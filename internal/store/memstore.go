package store

import (
	"sort"
	"sync"
	"time"

	"github.com/srstore/storefront-backend/internal/domain"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
)

// Store is the authoritative in-memory data layer for products, cart
// items and contacts. Ids are assigned from per-entity counters that
// start at 1 and are never reused, so ascending id is insertion order.
type Store interface {
	CreateProduct(in domain.ProductInput) domain.Product
	GetProduct(id int) (domain.Product, bool)
	Products() []domain.Product

	CartItemsBySession(sessionID string) []domain.CartItem
	AddCartItem(sessionID string, productID, quantity int) domain.CartItem
	SetCartItemQuantity(id, quantity int) (domain.CartItem, bool)
	DeleteCartItem(id int) bool
	DeleteCartItemsBySession(sessionID string) int

	CreateContact(in domain.ContactInput, createdAt time.Time) domain.Contact
}

type MemStore struct {
	log *logger.Logger

	productMu     sync.RWMutex
	products      map[int]domain.Product
	nextProductID int

	cartMu     sync.RWMutex
	cartItems  map[int]domain.CartItem
	nextCartID int

	contactMu     sync.RWMutex
	contacts      map[int]domain.Contact
	nextContactID int
}

var _ Store = (*MemStore)(nil)

func NewMemStore(baseLog *logger.Logger) *MemStore {
	storeLog := baseLog.With("store", "MemStore")
	return &MemStore{
		log:           storeLog,
		products:      make(map[int]domain.Product),
		nextProductID: 1,
		cartItems:     make(map[int]domain.CartItem),
		nextCartID:    1,
		contacts:      make(map[int]domain.Contact),
		nextContactID: 1,
	}
}

func (s *MemStore) CreateProduct(in domain.ProductInput) domain.Product {
	s.productMu.Lock()
	defer s.productMu.Unlock()

	p := domain.Product{
		ID:             s.nextProductID,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		OriginalPrice:  in.OriginalPrice,
		Category:       in.Category,
		Subcategory:    in.Subcategory,
		Image:          in.Image,
		Images:         in.Images,
		Rating:         in.Rating,
		ReviewCount:    in.ReviewCount,
		InStock:        in.InStock,
		StockCount:     in.StockCount,
		Features:       in.Features,
		Specifications: in.Specifications,
		Badge:          in.Badge,
	}
	s.nextProductID++
	s.products[p.ID] = p
	return p
}

func (s *MemStore) GetProduct(id int) (domain.Product, bool) {
	s.productMu.RLock()
	defer s.productMu.RUnlock()

	p, ok := s.products[id]
	return p, ok
}

func (s *MemStore) Products() []domain.Product {
	s.productMu.RLock()
	defer s.productMu.RUnlock()

	ids := make([]int, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.products[id])
	}
	return out
}

func (s *MemStore) CartItemsBySession(sessionID string) []domain.CartItem {
	s.cartMu.RLock()
	defer s.cartMu.RUnlock()

	ids := make([]int, 0, len(s.cartItems))
	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]domain.CartItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.cartItems[id])
	}
	return out
}

// AddCartItem merges into the existing line for (sessionID, productID)
// when one exists, otherwise inserts a new line. The lookup and the
// insert happen under one lock so two concurrent adds for the same
// pair cannot both create a row.
func (s *MemStore) AddCartItem(sessionID string, productID, quantity int) domain.CartItem {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	for id, item := range s.cartItems {
		if item.SessionID == sessionID && item.ProductID == productID {
			item.Quantity += quantity
			s.cartItems[id] = item
			return item
		}
	}

	item := domain.CartItem{
		ID:        s.nextCartID,
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	s.nextCartID++
	s.cartItems[item.ID] = item
	return item
}

func (s *MemStore) SetCartItemQuantity(id, quantity int) (domain.CartItem, bool) {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return domain.CartItem{}, false
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return item, true
}

func (s *MemStore) DeleteCartItem(id int) bool {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	_, ok := s.cartItems[id]
	if ok {
		delete(s.cartItems, id)
	}
	return ok
}

func (s *MemStore) DeleteCartItemsBySession(sessionID string) int {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	removed := 0
	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			delete(s.cartItems, id)
			removed++
		}
	}
	return removed
}

func (s *MemStore) CreateContact(in domain.ContactInput, createdAt time.Time) domain.Contact {
	s.contactMu.Lock()
	defer s.contactMu.Unlock()

	c := domain.Contact{
		ID:        s.nextContactID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: createdAt,
	}
	s.nextContactID++
	s.contacts[c.ID] = c
	return c
}
