package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srstore/storefront-backend/internal/http/response"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/services"
)

type CatalogHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:     log.With("handler", "CatalogHandler"),
		catalog: catalog,
	}
}

// ListProducts serves GET /api/products. category and search narrow
// the listing; sortBy reorders it (featured order when absent).
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := services.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products := h.catalog.ListProducts(c.Request.Context(), filter)
	if sortBy := c.Query("sortBy"); sortBy != "" {
		products = h.catalog.SortProducts(products, services.SortKey(sortBy))
	}
	response.RespondOK(c, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}

	product, ok := h.catalog.GetProduct(c.Request.Context(), id)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "product_not_found", services.ErrProductNotFound)
		return
	}
	response.RespondOK(c, product)
}
