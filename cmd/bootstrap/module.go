package bootstrap

import (
	"tour-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	JWTModule,
	components.GatewayModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
