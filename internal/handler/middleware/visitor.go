package middleware

import (
	"log/slog"
	"net/http"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/cookie"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/pkg/jwt"
	"tour-storefront/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxVisitorIDKey = "visitor_id"
	ctxSessionKey   = "session"

	LoginPath = "/login"
)

// VisitorMiddleware gives every browser a stable visitor id and exposes its session, if any.
type VisitorMiddleware struct {
	tokens    *jwt.Service
	sessions  shared.SessionStore
	cookieCfg config.CookieConfig
}

func NewVisitorMiddleware(tokens *jwt.Service, sessions shared.SessionStore, cfg config.Config) *VisitorMiddleware {
	return &VisitorMiddleware{
		tokens:    tokens,
		sessions:  sessions,
		cookieCfg: cfg.Cookie,
	}
}

func (m *VisitorMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := uuid.Nil
		if token := cookie.GetVisitorToken(c); token != "" {
			claims, err := m.tokens.ValidateToken(token)
			if err != nil {
				slog.Debug("Discarding visitor cookie", "error", err.Error())
			} else {
				visitorID = claims.VisitorID
			}
		}

		if visitorID == uuid.Nil {
			visitorID = uuid.New()
			token, err := m.tokens.GenerateToken(visitorID)
			if err != nil {
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
				return
			}
			cookie.SetVisitorCookie(c, m.cookieCfg, token, m.tokens.Duration())
		}
		c.Set(ctxVisitorIDKey, visitorID)

		sess, ok, err := m.sessions.Load(c.Request.Context(), visitorID)
		if err != nil {
			slog.Warn("Session lookup failed; continuing as guest", "visitor_id", visitorID.String(), "error", err.Error())
		} else if ok {
			c.Set(ctxSessionKey, sess)
		}

		c.Next()
	}
}

// RequireSession must run after Identify.
func (m *VisitorMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Login required", gin.H{
				"redirectTo": LoginPath,
			})
			return
		}
		c.Next()
	}
}

func (m *VisitorMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Login required", gin.H{
				"redirectTo": LoginPath,
			})
			return
		}
		if !sess.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetVisitorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxVisitorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetSession(c *gin.Context) (*user.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*user.Session)
	return sess, ok && sess != nil
}

// SetSession refreshes the session seen by later handlers and the request log. A nil session logs the visitor out.
func SetSession(c *gin.Context, sess *user.Session) {
	c.Set(ctxSessionKey, sess)
}
