package models

// CartItem is one line of a cart. Title, image and price are a snapshot taken
// when the line was first added and are never refreshed.
type CartItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Price int64  `json:"price"`
	Num   int    `json:"num"`
}

// Cart is an ordered list of items, unique by item ID.
type Cart []CartItem

// IndexOf returns the position of the first item with the given ID, or -1.
func (c Cart) IndexOf(itemID int64) int {
	for i := range c {
		if c[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Total returns the sum of price*num over all lines.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c {
		total += item.Price * int64(item.Num)
	}
	return total
}

// Count returns the number of units in the cart.
func (c Cart) Count() int {
	count := 0
	for _, item := range c {
		count += item.Num
	}
	return count
}
