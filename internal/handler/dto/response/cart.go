package response

import (
	"time"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/usecase/queries"
)

// Money is rendered with two decimals, the way the basket displays it.
type TotalsResponse struct {
	Subtotal  string `json:"subtotal"`
	TaxAmount string `json:"taxAmount"`
	Total     string `json:"total"`
}

func FromTotals(t cart.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:  t.Subtotal.StringFixed(2),
		TaxAmount: t.TaxAmount.StringFixed(2),
		Total:     t.Total.StringFixed(2),
	}
}

type CartItemResponse struct {
	Index    int       `json:"index"`
	TourID   string    `json:"tourId"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Price    string    `json:"price"`
	Duration int       `json:"duration"`
	Adults   int       `json:"adults"`
	Children int       `json:"children"`
	Date     string    `json:"date"`
	Amount   string    `json:"amount"`
	AddedAt  time.Time `json:"addedAt"`
}

type CartResponse struct {
	Items  []CartItemResponse `json:"items"`
	Totals TotalsResponse     `json:"totals"`
	Count  int                `json:"count"`
}

func FromCartItems(items []cart.LineItem) []CartItemResponse {
	res := make([]CartItemResponse, len(items))
	for i, it := range items {
		res[i] = CartItemResponse{
			Index:    i,
			TourID:   it.TourID,
			Name:     it.Name,
			Image:    it.Image,
			Price:    it.UnitPrice.StringFixed(2),
			Duration: it.DurationDays,
			Adults:   it.Adults,
			Children: it.Children,
			Date:     it.TravelDate,
			Amount:   it.Amount().StringFixed(2),
			AddedAt:  it.AddedAt,
		}
	}
	return res
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		Items:  FromCartItems(v.Items),
		Totals: FromTotals(v.Totals),
		Count:  v.Count,
	}
}

func FromCart(c *cart.Cart) *CartResponse {
	return FromCartView(queries.NewCartView(c))
}
