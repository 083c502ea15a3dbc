package cookie

import (
	"net/http"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
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
