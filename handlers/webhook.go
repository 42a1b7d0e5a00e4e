package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamescriptai/payment-webhook-service/pkg/hmacvalidator"
	"github.com/gamescriptai/payment-webhook-service/pkg/webhook"
	"github.com/gamescriptai/payment-webhook-service/queue"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

// SignatureHeader carries the out-of-band signature on banking webhooks.
const SignatureHeader = "HmacSignature"

// acceptedBody is the acknowledgement the processor expects; anything else
// makes it redeliver.
const acceptedBody = "[accepted]"

type WebhookHandler interface {
	ReceiveNotifications(c echo.Context) error
	ReceiveBankingWebhook(c echo.Context) error
}

type webhookHandler struct {
	validator *hmacvalidator.Validator
	queue     queue.Queue
}

func newWebhookHandler(validator *hmacvalidator.Validator, queue queue.Queue) WebhookHandler {
	return &webhookHandler{
		validator: validator,
		queue:     queue,
	}
}

func (h *Handlers) Webhook() WebhookHandler {
	return newWebhookHandler(h.validator, h.services.Queue)
}

// ReceiveNotifications handles the processor's standard notification webhook.
// Every item must carry a valid signature in its additionalData; a single bad
// item rejects the whole envelope and nothing is enqueued.
func (wh *webhookHandler) ReceiveNotifications(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	var hook webhook.Webhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return utils.BadRequest(c, "invalid webhook payload")
	}

	if err := c.Validate(&hook); err != nil {
		return utils.ValidationError(c, utils.FormatValidationErrors(err))
	}

	for _, container := range hook.NotificationItems {
		if !wh.validator.ValidateNotification(container.NotificationRequestItem) {
			utils.Logger.Warn().
				Str("psp_reference", container.NotificationRequestItem.PSPReference).
				Str("event_code", container.NotificationRequestItem.EventCode).
				Msg("rejected notification with invalid hmac signature")
			return utils.Unauthorized(c, "invalid hmac signature")
		}
	}

	for _, container := range hook.NotificationItems {
		item := container.NotificationRequestItem

		itemBytes, err := json.Marshal(item)
		if err != nil {
			return utils.HandleError(c, utils.ServerErr(err))
		}

		payload := queue.NotificationJobPayload{
			Live:                hook.Live,
			EventCode:           item.EventCode,
			PSPReference:        item.PSPReference,
			MerchantAccountCode: item.MerchantAccountCode,
			MerchantReference:   item.MerchantReference,
			Success:             item.Success,
			Item:                itemBytes,
		}

		if err := wh.queue.Enqueue(c.Request().Context(), queue.JobTypeNotification, payload); err != nil {
			return utils.HandleError(c, err)
		}
	}

	return c.String(http.StatusOK, acceptedBody)
}

// ReceiveBankingWebhook handles webhooks whose signature arrives out-of-band
// in a header, computed over the raw body with no canonicalization.
func (wh *webhookHandler) ReceiveBankingWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	signature := c.Request().Header.Get(SignatureHeader)
	if signature == "" {
		return utils.Unauthorized(c, "missing hmac signature")
	}

	if !wh.validator.ValidatePayload(body, signature) {
		utils.Logger.Warn().Msg("rejected banking webhook with invalid hmac signature")
		return utils.Unauthorized(c, "invalid hmac signature")
	}

	utils.Logger.Info().Int("bytes", len(body)).Msg("banking webhook authenticated")

	return c.String(http.StatusOK, acceptedBody)
}
