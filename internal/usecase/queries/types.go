package queries

import "tour-storefront/internal/domain/cart"

// CartView is the cart as shown in the basket and the header badge.
type CartView struct {
	Items  []cart.LineItem
	Totals cart.Totals
	Count  int
}

func NewCartView(c *cart.Cart) *CartView {
	return &CartView{
		Items:  c.Items(),
		Totals: c.Totals(),
		Count:  c.Len(),
	}
}
