package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce middleware generates a nonce for each request and adds it to the context.
// assetHosts are extra origins allowed to serve images and styles (the R2 CDN).
func CSPNonce(assetHosts ...string) echo.MiddlewareFunc {
	extra := strings.Join(assetHosts, " ")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value" // Should rarely happen, but prevents crash
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for page components)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			csp := fmt.Sprintf("default-src 'self'; "+
				"script-src 'self' 'nonce-%s' https://cdn.tailwindcss.com https://unpkg.com https://challenges.cloudflare.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com %s; "+
				"img-src 'self' data: %s; "+
				"font-src 'self' https://fonts.gstatic.com; "+
				"connect-src 'self' https://challenges.cloudflare.com; "+
				"frame-src https://challenges.cloudflare.com; "+
				"form-action 'self'", nonce, extra, extra)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
