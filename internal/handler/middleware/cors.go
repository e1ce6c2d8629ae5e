package middleware

import (
	"log/slog"
	"slices"

	"tour-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	// the page reads the badge count from every cart response, whatever the deployment configured
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, CartCountHeader) {
		expose = append(slices.Clone(expose), CartCountHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "ExposeHeaders", expose)
	return cors.New(corsCfg)
}
