//go:build e2e

package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/jwt"
	commonhttp "tour-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Visitor is one browser: every request carries the same visitor cookie.
type Visitor struct {
	ID     uuid.UUID
	Cookie *http.Cookie
	router *gin.Engine
}

type VisitorHelper struct {
	tokens *jwt.Service
}

func NewVisitorHelper(cfg config.VisitorConfig) *VisitorHelper {
	return &VisitorHelper{tokens: jwt.NewService(cfg.Secret, cfg.Duration)}
}

// Arrive lets the server mint the visitor cookie, the way a first page view does.
func (h *VisitorHelper) Arrive(t *testing.T, router *gin.Engine) *Visitor {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	issued := commonhttp.IssuedVisitorCookie(w)
	require.NotNil(t, issued, "visitor cookie not issued")

	claims, err := h.tokens.ValidateToken(issued.Value)
	require.NoError(t, err)

	return &Visitor{
		ID:     claims.VisitorID,
		Cookie: &http.Cookie{Name: issued.Name, Value: issued.Value},
		router: router,
	}
}

func (v *Visitor) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return commonhttp.PerformRequest(t, v.router, method, path, body, v.Cookie)
}

func (v *Visitor) Login(t *testing.T, email, password string) {
	t.Helper()
	w := v.Do(t, http.MethodPost, "/api/auth/login", request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
