package models

// CartItem is one line of the server cart. PriceAtAdd is the unit price
// captured when the item entered the cart.
type CartItem struct {
	ID         string  `json:"id"`
	Quantity   int     `json:"quantity"`
	PriceAtAdd float64 `json:"price_at_add"`
	Product    Product `json:"product"`
}

// Cart mirrors the server-owned cart aggregate. TotalPrice is computed by
// the server and passed through verbatim.
type Cart struct {
	ID         string     `json:"id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

// Count returns the sum of quantities across items.
func (c *Cart) Count() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// EmptyCart is the local shape a cart is reset to after a confirmed
// checkout, without waiting for a refetch.
func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}, TotalPrice: 0}
}
