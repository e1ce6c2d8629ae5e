package cart

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingTour      = errors.New("tour id is required")
	ErrNegativeQuantity = errors.New("traveler counts cannot be negative")
	ErrNegativePrice    = errors.New("unit price cannot be negative")
)

var (
	childPriceFactor = decimal.RequireFromString("0.5")
	taxRate          = decimal.RequireFromString("0.12")
)

const moneyScale = 2

// Tour is the catalog snapshot captured when a line item is added; later price changes do not affect it.
type Tour struct {
	ID           string
	Name         string
	Image        string
	Price        decimal.Decimal
	DurationDays int
}

type LineItem struct {
	TourID       string
	Name         string
	Image        string
	UnitPrice    decimal.Decimal
	DurationDays int
	Adults       int
	Children     int
	TravelDate   string
	AddedAt      time.Time
}

func (li LineItem) Travelers() int {
	return li.Adults + li.Children
}

// Amount is the pre-tax price of the line: adults pay the unit price, children half of it.
func (li LineItem) Amount() decimal.Decimal {
	adults := li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Adults)))
	children := li.UnitPrice.Mul(childPriceFactor).Mul(decimal.NewFromInt(int64(li.Children)))
	return adults.Add(children)
}

func (li LineItem) validate() error {
	if strings.TrimSpace(li.TourID) == "" {
		return ErrMissingTour
	}
	if li.Adults < 0 || li.Children < 0 {
		return ErrNegativeQuantity
	}
	if li.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Cart is an ordered list of line items. Adding the same tour twice yields two lines.
type Cart struct {
	items []LineItem
}

func New(items ...LineItem) *Cart {
	c := &Cart{items: make([]LineItem, len(items))}
	copy(c.items, items)
	return c
}

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int      { return len(c.items) }
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) Add(tour Tour, adults, children int, travelDate string, addedAt time.Time) (LineItem, error) {
	item := LineItem{
		TourID:       strings.TrimSpace(tour.ID),
		Name:         tour.Name,
		Image:        tour.Image,
		UnitPrice:    tour.Price,
		DurationDays: tour.DurationDays,
		Adults:       adults,
		Children:     children,
		TravelDate:   travelDate,
		AddedAt:      addedAt.UTC(),
	}
	if err := item.validate(); err != nil {
		return LineItem{}, err
	}
	c.items = append(c.items, item)
	return item, nil
}

// Remove drops the item at index and reports whether anything changed; out-of-range is a no-op.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// RemoveWhere keeps items for which drop returns false.
func (c *Cart) RemoveWhere(drop func(index int, item LineItem) bool) int {
	kept := c.items[:0]
	removed := 0
	for i, item := range c.items {
		if drop(i, item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Totals() Totals {
	return TotalsOf(c.items)
}
