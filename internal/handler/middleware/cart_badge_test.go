//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/handler/middleware"
	"tour-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartBadge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	badge := middleware.NewCartBadge()

	router := gin.New()
	router.Use(badge.Handler())
	router.POST("/cart/items", func(c *gin.Context) {
		badge.CartChanged(c.Request.Context(), uuid.New(), 3)
		c.Status(http.StatusCreated)
	})
	router.GET("/cart", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("mutations set the badge header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/cart/items", nil)
		httptest.AssertCartCount(t, rec, 3)
	})

	t.Run("reads leave it unset", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cart", nil)
		assert.Empty(t, rec.Header().Get(middleware.CartCountHeader))
	})

	t.Run("outside a request it is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			badge.CartChanged(context.Background(), uuid.New(), 1)
		})
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusTeapot}
		resp.Error.Message = "short and stout"
		_ = c.Error(&gin.Error{Err: assert.AnError, Type: gin.ErrorTypePublic, Meta: resp})
	})
	router.GET("/silent", func(c *gin.Context) {})

	t.Run("public errors are rendered from their meta", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTeapot, "short and stout")
	})

	t.Run("a handler that writes nothing yields 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
