//go:build unit

package api_test

import (
	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withVisitor stands in for VisitorMiddleware.Identify.
func withVisitor(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("visitor_id", id)
		c.Next()
	}
}

func withSession(sess *user.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	}
}
