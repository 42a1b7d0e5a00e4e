package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamescriptai/payment-webhook-service/config"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

func callWithAuth(t *testing.T, cfg *config.Config, username, password string, useAuth bool) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/notifications", nil)
	if useAuth {
		req.SetBasicAuth(username, password)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	return WebhookBasicAuth(cfg)(next)(c)
}

func TestWebhookBasicAuth(t *testing.T) {
	hash, err := utils.HashWebhookPassword("s3cret")
	require.NoError(t, err)

	configured := &config.Config{
		WebhookUsername:     "processor",
		WebhookPasswordHash: hash,
	}

	t.Run("pass-through when not configured", func(t *testing.T) {
		assert.NoError(t, callWithAuth(t, &config.Config{}, "", "", false))
	})

	t.Run("correct credentials", func(t *testing.T) {
		assert.NoError(t, callWithAuth(t, configured, "processor", "s3cret", true))
	})

	t.Run("missing credentials", func(t *testing.T) {
		err := callWithAuth(t, configured, "", "", false)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		err := callWithAuth(t, configured, "processor", "wrong", true)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("wrong username", func(t *testing.T) {
		err := callWithAuth(t, configured, "intruder", "s3cret", true)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
