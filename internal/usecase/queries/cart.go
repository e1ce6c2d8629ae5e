package queries

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart_mock.go -package=queriesmock

import (
	"context"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartQueries interface {
	GetCart(ctx context.Context, visitorID uuid.UUID) (*CartView, error)
	GetTotals(ctx context.Context, visitorID uuid.UUID) (cart.Totals, error)
}

type cartQueriesImpl struct {
	carts shared.CartStore
}

func NewCartQueries(carts shared.CartStore) CartQueries {
	return &cartQueriesImpl{
		carts: carts,
	}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, visitorID uuid.UUID) (*CartView, error) {
	c, err := q.carts.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return NewCartView(c), nil
}

func (q *cartQueriesImpl) GetTotals(ctx context.Context, visitorID uuid.UUID) (cart.Totals, error) {
	c, err := q.carts.Load(ctx, visitorID)
	if err != nil {
		return cart.Totals{}, err
	}
	return c.Totals(), nil
}
