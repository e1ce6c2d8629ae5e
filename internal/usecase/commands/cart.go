package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart_mock.go -package=commandsmock

import (
	"context"

	"tour-storefront/internal/domain/cart"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/pkg/clock"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartItem = errs.New("invalid cart item")
)

type CartCommands interface {
	AddItem(ctx context.Context, visitorID uuid.UUID, req reqdto.AddCartItemRequest) (*cart.Cart, error)
	RemoveItem(ctx context.Context, visitorID uuid.UUID, index int) (*cart.Cart, error)
	Clear(ctx context.Context, visitorID uuid.UUID) error
}

type cartCommandsImpl struct {
	carts    shared.CartStore
	observer shared.CartObserver
	clock    clock.Clock
}

func NewCartCommands(carts shared.CartStore, observer shared.CartObserver, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{
		carts:    carts,
		observer: observer,
		clock:    clk,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, visitorID uuid.UUID, req reqdto.AddCartItemRequest) (*cart.Cart, error) {
	current, err := c.carts.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	if _, err := current.Add(req.ToTour(), req.Adults.Int(), req.Children.Int(), req.Date, c.clock.Now()); err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidCartItem), errs.ErrDomainValidation)
	}

	if err := c.carts.Save(ctx, visitorID, current); err != nil {
		return nil, err
	}
	c.observer.CartChanged(ctx, visitorID, current.Len())
	return current, nil
}

// RemoveItem leaves storage untouched when index is out of range.
func (c *cartCommandsImpl) RemoveItem(ctx context.Context, visitorID uuid.UUID, index int) (*cart.Cart, error) {
	current, err := c.carts.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	if !current.Remove(index) {
		return current, nil
	}

	if err := c.carts.Save(ctx, visitorID, current); err != nil {
		return nil, err
	}
	c.observer.CartChanged(ctx, visitorID, current.Len())
	return current, nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context, visitorID uuid.UUID) error {
	if err := c.carts.Clear(ctx, visitorID); err != nil {
		return err
	}
	c.observer.CartChanged(ctx, visitorID, 0)
	return nil
}
