package cookie

import (
	"net/http"
	"time"

	"aparthotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

var sameSiteModes = map[string]http.SameSite{
	"Strict": http.SameSiteStrictMode,
	"Lax":    http.SameSiteLaxMode,
	"None":   http.SameSiteNoneMode,
}

// SetTokenCookies stores both session tokens as HttpOnly cookies on the whole site.
func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	write(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, AccessTokenCookieName, "", -1)
	write(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string  { return read(c, AccessTokenCookieName) }
func GetRefreshToken(c *gin.Context) string { return read(c, RefreshTokenCookieName) }

func write(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	mode, ok := sameSiteModes[cfg.SameSite]
	if !ok {
		mode = http.SameSiteLaxMode
	}
	c.SetSameSite(mode)
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func read(c *gin.Context, name string) string {
	v, _ := c.Cookie(name)
	return v
}
