package components

import (
	"log/slog"

	"tour-storefront/internal/handler/middleware"
	"tour-storefront/internal/infra/queue"
	"tour-storefront/internal/infra/store"
	"tour-storefront/internal/pkg/clock"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			store.NewCartStore,
			fx.As(new(shared.CartStore)),
		),
		fx.Annotate(
			store.NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			middleware.NewCartBadge,
			fx.As(fx.Self()),
			fx.As(new(shared.CartObserver)),
		),
		NewEventPublisher,
		clock.NewRealClock,
	),
)

func NewEventPublisher(cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	return queue.NewPublisher(cfg.Queue, logger)
}
