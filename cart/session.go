package cart

import (
	"context"

	"webstore-portal/models"
	"webstore-portal/store"

	"github.com/gin-gonic/gin"
)

// The helpers below pick the backend for a request: the cart cookie for
// guests, the shared store for signed-in users.

func (m *Manager) CookieCart(c *gin.Context) (models.Cart, error) {
	return m.GetCart(c.Request.Context(), m.CookieStore(c), m.opts.CookieKey)
}

func (m *Manager) UserCart(ctx context.Context, userID string) (models.Cart, error) {
	return m.GetCart(ctx, m.shared, m.SharedKey(userID))
}

func (m *Manager) AddToCookieCart(c *gin.Context, itemID int64, num int) (models.Cart, error) {
	return m.update(c.Request.Context(), m.CookieStore(c), m.opts.CookieKey, func(cart models.Cart) models.Cart {
		return m.AddItem(c.Request.Context(), cart, itemID, num)
	})
}

func (m *Manager) AddToUserCart(ctx context.Context, userID string, itemID int64, num int) (models.Cart, error) {
	return m.update(ctx, m.shared, m.SharedKey(userID), func(cart models.Cart) models.Cart {
		return m.AddItem(ctx, cart, itemID, num)
	})
}

func (m *Manager) RemoveFromCookieCart(c *gin.Context, itemID int64) (models.Cart, error) {
	return m.update(c.Request.Context(), m.CookieStore(c), m.opts.CookieKey, func(cart models.Cart) models.Cart {
		return m.RemoveItem(cart, itemID)
	})
}

func (m *Manager) RemoveFromUserCart(ctx context.Context, userID string, itemID int64) (models.Cart, error) {
	return m.update(ctx, m.shared, m.SharedKey(userID), func(cart models.Cart) models.Cart {
		return m.RemoveItem(cart, itemID)
	})
}

// SyncCookieCart merges the request's cart cookie into the user's shared cart
// and expires the cookie once the merge is stored.
func (m *Manager) SyncCookieCart(c *gin.Context, userID string) error {
	cookies := m.CookieStore(c)
	payload, ok, err := cookies.Get(c.Request.Context(), m.opts.CookieKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := m.SyncCart(c.Request.Context(), userID, payload); err != nil {
		return err
	}
	cookies.Expire(m.opts.CookieKey)
	return nil
}

// update is the read-modify-write cycle every mutation goes through.
func (m *Manager) update(ctx context.Context, source store.Store, key string, mutate func(models.Cart) models.Cart) (models.Cart, error) {
	cart, err := m.GetCart(ctx, source, key)
	if err != nil {
		return nil, err
	}

	cart = mutate(cart)
	if err := m.SaveCart(ctx, source, key, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
