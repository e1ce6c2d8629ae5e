package bootstrap

import (
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewVisitorTokenService,
	),
)

func NewVisitorTokenService(cfg config.Config) *jwt.Service {
	if cfg.Visitor.Duration <= 0 {
		panic("invalid VISITOR_DURATION: must be positive")
	}
	return jwt.NewService(cfg.Visitor.Secret, cfg.Visitor.Duration)
}
