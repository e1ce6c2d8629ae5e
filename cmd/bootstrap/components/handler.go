package components

import (
	"tour-storefront/internal/handler"
	"tour-storefront/internal/handler/api"
	"tour-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewAccountHandler,
		api.NewAdminHandler,
		middleware.NewVisitorMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
