package domain

// CartItem is one line of a session's cart. ProductID is a lookup key,
// not an owning reference; the cart service resolves it at read time.
type CartItem struct {
	ID        int    `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartItemWithProduct is a cart line joined with the current data of
// the product it references.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}
