package handlers

import (
	"log"
	"net/http"
	"strconv"

	"webstore-portal/cart"
	"webstore-portal/dtos"
	"webstore-portal/models"
	"webstore-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler serves the cart of whoever is calling: the shared cart for a
// signed-in user, the cookie cart for a guest.
type CartHandler struct {
	Carts *cart.Manager
}

func (h *CartHandler) GetCart(c *gin.Context) {
	var (
		items models.Cart
		err   error
	)
	if userID, ok := currentUserID(c); ok {
		items, err = h.Carts.UserCart(c.Request.Context(), userID)
	} else {
		items, err = h.Carts.CookieCart(c)
	}
	if err != nil {
		log.Printf("Failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewCartView(items))
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req dtos.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var (
		items models.Cart
		err   error
	)
	if userID, ok := currentUserID(c); ok {
		items, err = h.Carts.AddToUserCart(c.Request.Context(), userID, req.ItemID, req.Quantity())
	} else {
		items, err = h.Carts.AddToCookieCart(c, req.ItemID, req.Quantity())
	}
	if err != nil {
		log.Printf("Failed to add item %d to cart: %v", req.ItemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewCartView(items))
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var items models.Cart
	if userID, ok := currentUserID(c); ok {
		items, err = h.Carts.RemoveFromUserCart(c.Request.Context(), userID, itemID)
	} else {
		items, err = h.Carts.RemoveFromCookieCart(c, itemID)
	}
	if err != nil {
		log.Printf("Failed to remove item %d from cart: %v", itemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewCartView(items))
}

// SyncCart merges the guest cart cookie into the signed-in user's cart.
func (h *CartHandler) SyncCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Carts.SyncCookieCart(c, userID); err != nil {
		log.Printf("Failed to sync cart for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync cart"})
		return
	}

	items, err := h.Carts.UserCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewCartView(items))
}

// currentUserID returns the signed-in user's id as set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return "", false
	}
	return userID.String(), true
}
