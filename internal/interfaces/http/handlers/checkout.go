// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
)

// CheckoutHandler handles hosted checkout session endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(redisClient *redis.Client, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkout.NewService(redisClient, cfg),
		config:          cfg,
	}
}

// CreateSession handles POST /create-checkout-session. Any request body is
// accepted and ignored; the session starts empty.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	session, err := h.checkoutService.CreateSession(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create checkout session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": session.URL(h.config),
	})
}

// Checkout handles POST /checkout with the cart's items in the body.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req struct {
		Items []checkout.ItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.checkoutService.CreateSession(c.Request.Context(), req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": session.URL(h.config),
	})
}

// GetSession handles GET /checkout/session/:id
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	session, err := h.checkoutService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, session)
}
