//go:build unit || e2e

package builder

import (
	"time"

	"tour-storefront/internal/domain/cart"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/usecase/gateway"

	"github.com/shopspring/decimal"
)

var FixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type CartItemBuilder struct {
	TourID   string
	Name     string
	Image    string
	Price    string
	Duration int
	Adults   int
	Children int
	Date     string
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		TourID:   "P1",
		Name:     "Galápagos Explorer",
		Image:    "https://img.example.com/galapagos.jpg",
		Price:    "100",
		Duration: 5,
		Adults:   2,
		Children: 1,
		Date:     "2026-07-01",
	}
}

func (b *CartItemBuilder) With(mutate func(*CartItemBuilder)) *CartItemBuilder {
	mutate(b)
	return b
}

func (b *CartItemBuilder) BuildTour() cart.Tour {
	return cart.Tour{
		ID:           b.TourID,
		Name:         b.Name,
		Image:        b.Image,
		Price:        decimal.RequireFromString(b.Price),
		DurationDays: b.Duration,
	}
}

func (b *CartItemBuilder) BuildDomain() cart.LineItem {
	return cart.LineItem{
		TourID:       b.TourID,
		Name:         b.Name,
		Image:        b.Image,
		UnitPrice:    decimal.RequireFromString(b.Price),
		DurationDays: b.Duration,
		Adults:       b.Adults,
		Children:     b.Children,
		TravelDate:   b.Date,
		AddedAt:      FixedTime,
	}
}

// BuildRequestMap is the JSON body a browser posts to the cart endpoint.
func (b *CartItemBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"tour": map[string]any{
			"idPaquete":    b.TourID,
			"nombre":       b.Name,
			"imagenUrl":    b.Image,
			"precioActual": b.Price,
			"duracion":     b.Duration,
		},
		"adults":   b.Adults,
		"children": b.Children,
		"date":     b.Date,
	}
}

func (b *CartItemBuilder) BuildRequestDTO() reqdto.AddCartItemRequest {
	adults := reqdto.Count(b.Adults)
	children := reqdto.Count(b.Children)
	duration := reqdto.Count(b.Duration)
	return reqdto.AddCartItemRequest{
		Tour: reqdto.TourSnapshot{
			IdPaquete:    reqdto.Text(b.TourID),
			Nombre:       b.Name,
			ImagenUrl:    b.Image,
			PrecioActual: reqdto.Amount{Decimal: decimal.RequireFromString(b.Price)},
			Duracion:     &duration,
		},
		Adults:   &adults,
		Children: &children,
		Date:     b.Date,
	}
}

type PackageBuilder struct {
	pkg gateway.Package
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{pkg: gateway.Package{
		ID:           "P1",
		Name:         "Galápagos Explorer",
		City:         "Puerto Ayora",
		Country:      "Ecuador",
		ActivityType: "Aventura",
		Capacity:     20,
		NormalPrice:  120,
		CurrentPrice: 100,
		ImageURL:     "https://img.example.com/galapagos.jpg",
		DurationDays: 5,
	}}
}

func (b *PackageBuilder) With(mutate func(*gateway.Package)) *PackageBuilder {
	mutate(&b.pkg)
	return b
}

func (b *PackageBuilder) Build() gateway.Package {
	return b.pkg
}
