package dtos

import "webstore-portal/models"

// AddCartItemRequest is the body of POST /api/cart. Num defaults to 1 when omitted.
type AddCartItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
	Num    *int  `json:"num"`
}

// Quantity returns the requested number of units.
func (r AddCartItemRequest) Quantity() int {
	if r.Num == nil {
		return 1
	}
	return *r.Num
}

// CartView is the cart as returned to clients.
type CartView struct {
	Items models.Cart `json:"items"`
	Total int64       `json:"total"`
	Count int         `json:"count"`
}

func NewCartView(cart models.Cart) CartView {
	if cart == nil {
		cart = models.Cart{}
	}
	return CartView{
		Items: cart,
		Total: cart.Total(),
		Count: cart.Count(),
	}
}
