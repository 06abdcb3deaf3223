package cart

import (
	"encoding/json"
	"fmt"
	"strings"

	"webstore-portal/models"
)

// Encode serializes a cart as a JSON array. A nil cart encodes as "[]".
func Encode(cart models.Cart) (string, error) {
	if cart == nil {
		cart = models.Cart{}
	}
	b, err := json.Marshal(cart)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(b), nil
}

// Decode parses a serialized cart. Blank input and JSON null yield an empty
// cart. Malformed input yields an empty cart together with the parse error.
func Decode(payload string) (models.Cart, error) {
	if strings.TrimSpace(payload) == "" {
		return models.Cart{}, nil
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		return models.Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart == nil {
		return models.Cart{}, nil
	}
	return cart, nil
}
