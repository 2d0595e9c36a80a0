package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srstore/storefront-backend/internal/http/middleware"
	"github.com/srstore/storefront-backend/internal/http/response"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/services"
)

type CartHandler struct {
	log  *logger.Logger
	cart services.CartService
}

func NewCartHandler(log *logger.Logger, cart services.CartService) *CartHandler {
	return &CartHandler{
		log:  log.With("handler", "CartHandler"),
		cart: cart,
	}
}

type addToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart serves GET /api/cart: every line of the session's cart with
// resolved product data plus the running total.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	items, err := h.cart.GetCartItems(c.Request.Context(), sessionID)
	if err != nil {
		h.log.Error("GetCart failed", "error", err, "session_id", sessionID)
		response.RespondError(c, http.StatusInternalServerError, "cart_integrity", err)
		return
	}
	response.RespondOK(c, gin.H{
		"items": items,
		"total": h.cart.CartTotal(items),
	})
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	item, err := h.cart.AddToCart(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		response.RespondError(c, http.StatusBadRequest, "invalid_quantity", err)
		return
	case errors.Is(err, services.ErrProductNotFound):
		response.RespondError(c, http.StatusNotFound, "product_not_found", err)
		return
	case err != nil:
		h.log.Error("AddToCart failed", "error", err, "session_id", sessionID, "product_id", req.ProductID)
		response.RespondError(c, http.StatusInternalServerError, "add_to_cart_failed", err)
		return
	}
	response.RespondCreated(c, item)
}

// UpdateCartItem serves PATCH /api/cart/:id. A quantity of zero or
// less removes the line and answers 204.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_cart_item_id", err)
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	item, err := h.cart.UpdateCartItem(c.Request.Context(), id, req.Quantity)
	if errors.Is(err, services.ErrCartItemNotFound) {
		response.RespondError(c, http.StatusNotFound, "cart_item_not_found", err)
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}
	response.RespondOK(c, item)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_cart_item_id", err)
		return
	}

	if removed := h.cart.RemoveFromCart(c.Request.Context(), id); !removed {
		response.RespondError(c, http.StatusNotFound, "cart_item_not_found", services.ErrCartItemNotFound)
		return
	}
	response.RespondOK(c, gin.H{"removed": true})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	cleared := h.cart.ClearCart(c.Request.Context(), sessionID)
	response.RespondOK(c, gin.H{"cleared": cleared})
}
