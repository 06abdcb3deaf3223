package cart

import (
	"context"
	"log"

	"webstore-portal/catalog"
	"webstore-portal/models"
	"webstore-portal/store"
	"webstore-portal/utils"

	"github.com/gin-gonic/gin"
)

// Options names where carts live. Shared keys are KeyPrefix + userID; the
// cookie name is the same for every guest.
type Options struct {
	CookieKey    string
	CookieMaxAge int
	CookieSecure bool
	KeyPrefix    string
}

// Manager runs cart operations as a single read-modify-write against one
// backend. It keeps no cart state between calls; concurrent writers to the
// same key race and the last write wins.
type Manager struct {
	opts   Options
	shared store.Store
	items  catalog.ItemClient
}

func NewManager(opts Options, shared store.Store, items catalog.ItemClient) *Manager {
	return &Manager{opts: opts, shared: shared, items: items}
}

func (m *Manager) CookieKey() string {
	return m.opts.CookieKey
}

func (m *Manager) SharedKey(userID string) string {
	return m.opts.KeyPrefix + userID
}

// CookieStore returns the ephemeral backend for the current request.
func (m *Manager) CookieStore(c *gin.Context) *store.CookieStore {
	return store.NewCookieStore(c, m.opts.CookieMaxAge, m.opts.CookieSecure)
}

// GetCart loads the cart stored under key. A missing, blank or unreadable
// value is an empty cart; only backend failures are returned as errors.
func (m *Manager) GetCart(ctx context.Context, source store.Store, key string) (models.Cart, error) {
	value, ok, err := source.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.Cart{}, nil
	}

	cart, err := Decode(value)
	if err != nil {
		log.Printf("WARNING: discarding unreadable cart under %q: %v", key, err)
		return models.Cart{}, nil
	}
	return cart, nil
}

// SaveCart overwrites the cart stored under key.
func (m *Manager) SaveCart(ctx context.Context, source store.Store, key string, cart models.Cart) error {
	value, err := Encode(cart)
	if err != nil {
		return err
	}
	return source.Set(ctx, key, value)
}

// AddItem adds num units of itemID. An existing line accumulates num without
// a lookup. A new line is built from the item service; if the lookup fails
// the cart is returned unchanged and no error is reported. num is not
// validated.
func (m *Manager) AddItem(ctx context.Context, cart models.Cart, itemID int64, num int) models.Cart {
	if i := cart.IndexOf(itemID); i >= 0 {
		cart[i].Num += num
		return cart
	}

	item, err := m.items.GetItem(ctx, itemID)
	if err != nil {
		log.Printf("WARNING: item %d not added to cart: %v", itemID, err)
		return cart
	}

	return append(cart, models.CartItem{
		ID:    item.ID,
		Title: item.Title,
		Image: utils.PrimaryImage(item.Image),
		Price: item.Price,
		Num:   num,
	})
}

// RemoveItem drops the first line with itemID. The input slice is not modified.
func (m *Manager) RemoveItem(cart models.Cart, itemID int64) models.Cart {
	i := cart.IndexOf(itemID)
	if i < 0 {
		return cart
	}

	out := make(models.Cart, 0, len(cart)-1)
	out = append(out, cart[:i]...)
	return append(out, cart[i+1:]...)
}

// SyncCart folds a guest's cookie cart into the user's shared cart.
// An empty cookie cart never touches the shared cart. When both carts hold
// the same item the shared line is kept as is; quantities are not summed.
func (m *Manager) SyncCart(ctx context.Context, userID, cookiePayload string) error {
	cookieCart, err := Decode(cookiePayload)
	if err != nil {
		log.Printf("WARNING: ignoring unreadable cookie cart for user %s: %v", userID, err)
	}
	if len(cookieCart) == 0 {
		return nil
	}

	key := m.SharedKey(userID)
	sharedCart, err := m.GetCart(ctx, m.shared, key)
	if err != nil {
		return err
	}
	if len(sharedCart) == 0 {
		return m.SaveCart(ctx, m.shared, key, cookieCart)
	}

	return m.SaveCart(ctx, m.shared, key, merge(sharedCart, cookieCart))
}

// merge unions two carts by item id. Cookie lines go into the map first and
// shared lines overwrite them. Output keeps shared order, then cookie-only
// lines in cookie order.
func merge(shared, cookie models.Cart) models.Cart {
	byID := make(map[int64]models.CartItem, len(shared)+len(cookie))
	for _, item := range cookie {
		if _, seen := byID[item.ID]; !seen {
			byID[item.ID] = item
		}
	}
	for _, item := range shared {
		byID[item.ID] = item
	}

	merged := make(models.Cart, 0, len(byID))
	for _, items := range []models.Cart{shared, cookie} {
		for _, item := range items {
			if winner, ok := byID[item.ID]; ok {
				merged = append(merged, winner)
				delete(byID, item.ID)
			}
		}
	}
	return merged
}
