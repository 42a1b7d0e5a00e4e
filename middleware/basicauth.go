package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamescriptai/payment-webhook-service/config"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

// WebhookBasicAuth enforces the optional HTTP basic auth the processor can be
// configured to send alongside the HMAC signature. When no credentials are
// configured the middleware is a pass-through; the HMAC check still applies.
func WebhookBasicAuth(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.WebhookUsername == "" && cfg.WebhookPasswordHash == "" {
				return next(c)
			}

			username, password, ok := c.Request().BasicAuth()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "basic auth credentials are required")
			}

			if err := utils.VerifyWebhookCredentials(cfg.WebhookUsername, cfg.WebhookPasswordHash, username, password); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid basic auth credentials")
			}

			return next(c)
		}
	}
}
