package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srstore/storefront-backend/internal/domain"
	"github.com/srstore/storefront-backend/internal/http/response"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/services"
)

type ContactHandler struct {
	log     *logger.Logger
	contact services.ContactService
}

func NewContactHandler(log *logger.Logger, contact services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:     log.With("handler", "ContactHandler"),
		contact: contact,
	}
}

// SubmitContact serves POST /api/contacts. Only the JSON shape is
// enforced here; the client owns required-field validation.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var in domain.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	contact := h.contact.CreateContact(c.Request.Context(), in)
	response.RespondCreated(c, contact)
}
