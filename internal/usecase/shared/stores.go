package shared

//go:generate mockgen -source=stores.go -destination=../../../tests/mock/shared/stores_mock.go -package=sharedmock

import (
	"context"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/domain/user"

	"github.com/google/uuid"
)

type CartStore interface {
	Load(ctx context.Context, visitorID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, visitorID uuid.UUID, c *cart.Cart) error
	Clear(ctx context.Context, visitorID uuid.UUID) error
}

type SessionStore interface {
	Load(ctx context.Context, visitorID uuid.UUID) (*user.Session, bool, error)
	Save(ctx context.Context, visitorID uuid.UUID, s *user.Session) error
	Delete(ctx context.Context, visitorID uuid.UUID) error
}

// CartObserver is notified with the new line count after every cart mutation.
type CartObserver interface {
	CartChanged(ctx context.Context, visitorID uuid.UUID, count int)
}

type EventPublisher interface {
	PublishCheckoutCompleted(ctx context.Context, event CheckoutCompletedEvent) error
}
