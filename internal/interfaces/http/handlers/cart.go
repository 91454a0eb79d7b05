// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

const cartSessionCookie = "cart_session"

// CartHandler exposes the session cart over HTTP. The session is a cookie
// issued on first contact; carts live in Redis keyed by that session id.
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
	log         *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) *CartHandler {
	store := cart.NewRedisStore(redisClient, cfg.Cart.SessionTTL)
	return &CartHandler{
		cartService: cart.NewService(store, log),
		config:      cfg,
		log:         log,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	c.JSON(http.StatusOK, cart.Respond(h.cartService.Get(c.Request.Context(), sessionID)))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var candidate cart.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionID := h.sessionID(c)
	updated, err := h.cartService.Add(c.Request.Context(), sessionID, candidate)
	h.respond(c, updated, err)
}

// UpdateItem handles PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionID := h.sessionID(c)
	updated, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	h.respond(c, updated, err)
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	sessionID := h.sessionID(c)
	updated, err := h.cartService.RemoveProduct(c.Request.Context(), sessionID, productID)
	h.respond(c, updated, err)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	updated, err := h.cartService.Clear(c.Request.Context(), sessionID)
	h.respond(c, updated, err)
}

// respond returns the updated cart. A persistence failure is logged but the
// reduced cart is still served, matching the original's fire-and-forget
// snapshot writes.
func (h *CartHandler) respond(c *gin.Context, updated cart.Cart, err error) {
	if err != nil {
		h.log.WithError(err).Warn("Cart snapshot write failed")
	}
	c.JSON(http.StatusOK, cart.Respond(updated))
}

// sessionID returns the cart session cookie, issuing one if absent.
func (h *CartHandler) sessionID(c *gin.Context) string {
	if sessionID, err := c.Cookie(cartSessionCookie); err == nil && sessionID != "" {
		return sessionID
	}

	sessionID := uuid.New().String()
	maxAge := int(h.config.Cart.SessionTTL.Seconds())
	c.SetCookie(cartSessionCookie, sessionID, maxAge, "/", "", false, true)
	return sessionID
}
