package cookie

import (
	"net/http"
	"time"

	"tour-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const VisitorCookieName = "sf_visitor"

func SetVisitorCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		VisitorCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetVisitorToken(c *gin.Context) string {
	token, _ := c.Cookie(VisitorCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
