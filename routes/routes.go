package routes

import (
	"net/http"

	echo "github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"

	"github.com/gamescriptai/payment-webhook-service/config"
	"github.com/gamescriptai/payment-webhook-service/handlers"
	"github.com/gamescriptai/payment-webhook-service/middleware"
)

func Register(e *echo.Echo, cfg *config.Config, handlers *handlers.Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Ok")
	})

	e.GET("/docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html>
<head>
    <title>Payment Webhook Verification Service API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
    <style>
        body { margin: 0; padding: 0; }
    </style>
</head>
<body>
    <redoc spec-url='/docs/openapi.json'></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`)
	})

	e.GET("/docs/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, getOpenAPISpec())
	})

	api := e.Group("/api")
	api.Use(emw.Logger(), emw.Recover())
	api.Use(middleware.TraceIDMiddleware())

	RegisterWebhookRoutes(api, cfg, handlers)
}

func RegisterWebhookRoutes(api *echo.Group, cfg *config.Config, handlers *handlers.Handlers) {
	webhookHandler := handlers.Webhook()

	webhooks := api.Group("/webhooks")
	webhooks.Use(middleware.WebhookBasicAuth(cfg))

	webhooks.POST("/notifications", webhookHandler.ReceiveNotifications)
	webhooks.POST("/banking", webhookHandler.ReceiveBankingWebhook)
}

func getOpenAPISpec() map[string]interface{} {
	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Payment Webhook Verification Service API",
			"version":     "1.0.0",
			"description": "Authenticates inbound payment-processor webhook notifications with HMAC-SHA256 before handing verified events to downstream consumers.",
		},
		"servers": []map[string]interface{}{
			{
				"url":         "http://localhost:8080",
				"description": "Local development server",
			},
		},
		"paths": map[string]interface{}{
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Health check",
					"description": "Check if the service is running",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Service is healthy",
							"content": map[string]interface{}{
								"text/plain": map[string]interface{}{
									"schema": map[string]interface{}{
										"type":    "string",
										"example": "Ok",
									},
								},
							},
						},
					},
				},
			},
			"/api/webhooks/notifications": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Receive processor notifications",
					"description": "Verifies the HMAC signature carried in each notification item's additionalData. Responds with [accepted] when every item is authentic.",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "All items verified and accepted"},
						"401": map[string]interface{}{"description": "At least one item failed HMAC verification"},
					},
				},
			},
			"/api/webhooks/banking": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Receive banking webhooks",
					"description": "Verifies the HmacSignature header computed over the raw request body.",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Payload verified and accepted"},
						"401": map[string]interface{}{"description": "Missing or invalid signature"},
					},
				},
			},
		},
		"components": map[string]interface{}{
			"securitySchemes": map[string]interface{}{
				"basicAuth": map[string]interface{}{
					"type":        "http",
					"scheme":      "basic",
					"description": "Optional basic auth configured on the processor side",
				},
			},
		},
	}
}
