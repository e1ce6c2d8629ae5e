package middleware

import (
	"context"
	"net/http"
	"strconv"

	"tour-storefront/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CartCountHeader = "X-Cart-Count"

type badgeWriterKey struct{}

// CartBadge refreshes the header badge after cart mutations. It implements shared.CartObserver.
type CartBadge struct{}

func NewCartBadge() *CartBadge {
	return &CartBadge{}
}

// Handler makes the response writer reachable from the request context.
func (b *CartBadge) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), badgeWriterKey{}, http.ResponseWriter(c.Writer))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (b *CartBadge) CartChanged(ctx context.Context, _ uuid.UUID, count int) {
	metrics.ObserveCartSize(count)
	if w, ok := ctx.Value(badgeWriterKey{}).(http.ResponseWriter); ok {
		w.Header().Set(CartCountHeader, strconv.Itoa(count))
	}
}
