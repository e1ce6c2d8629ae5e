package components

import (
	"tour-storefront/internal/pkg/clock"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/queries"
	"tour-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		// Commands
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewAccountCommands,
		commands.NewAdminCommands,
		NewCheckoutCommands,
		// Queries
		queries.NewSessionQueries,
		queries.NewCartQueries,
		queries.NewCatalogQueries,
		queries.NewAccountQueries,
		queries.NewAdminQueries,
	),
)

type checkoutParams struct {
	fx.In

	Config       config.Config
	Sessions     shared.SessionStore
	Carts        shared.CartStore
	Observer     shared.CartObserver
	Events       shared.EventPublisher
	Availability gateway.AvailabilityService
	Reservations gateway.ReservationService
	Banking      gateway.BankingService
	Invoices     gateway.InvoiceService
	Clock        clock.Clock
}

func NewCheckoutCommands(p checkoutParams) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(commands.CheckoutDeps{
		Sessions:     p.Sessions,
		Carts:        p.Carts,
		Observer:     p.Observer,
		Events:       p.Events,
		Availability: p.Availability,
		Reservations: p.Reservations,
		Banking:      p.Banking,
		Invoices:     p.Invoices,
		Clock:        p.Clock,
	}, p.Config)
}
