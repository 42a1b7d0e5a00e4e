package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gamescriptai/payment-webhook-service/models"
	"github.com/gamescriptai/payment-webhook-service/pkg/webhook"
	"github.com/gamescriptai/payment-webhook-service/queue"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

type NotificationService interface {
	ProcessNotification(ctx context.Context, payload queue.NotificationJobPayload) error
}

type notificationService struct {
	consumer EventConsumer
}

func (s *Services) Notification() NotificationService {
	return &notificationService{
		consumer: s.Consumer,
	}
}

// ProcessNotification reshapes an already-verified notification item into a
// VerifiedEvent and hands it to the consumer. Verification happened at
// ingress; this layer never re-decides authenticity.
func (ns *notificationService) ProcessNotification(ctx context.Context, payload queue.NotificationJobPayload) error {
	var item webhook.NotificationItem
	if err := json.Unmarshal(payload.Item, &item); err != nil {
		return fmt.Errorf("unmarshal notification item: %w", err)
	}

	success, err := item.IsSuccess()
	if err != nil {
		return utils.BadRequestErr(fmt.Sprintf("notification %s: %v", item.PSPReference, err))
	}

	live, err := (&webhook.Webhook{Live: payload.Live}).IsLive()
	if err != nil {
		return utils.BadRequestErr(fmt.Sprintf("notification %s: %v", item.PSPReference, err))
	}

	event := &models.VerifiedEvent{
		Live:                live,
		RawEventCode:        item.EventCode,
		PSPReference:        item.PSPReference,
		MerchantAccountCode: item.MerchantAccountCode,
		MerchantReference:   item.MerchantReference,
		Success:             success,
		ReceivedAt:          time.Now().UTC(),
		RawItem:             payload.Item,
	}

	if code, known := webhook.ParseEventCode(item.EventCode); known {
		event.EventCode = code
		event.KnownEvent = true
	} else {
		utils.Logger.Warn().
			Str("event_code", item.EventCode).
			Str("psp_reference", item.PSPReference).
			Msg("unknown event code, delivering as generic event")
	}

	if amount, err := item.Amount.ToMoney(); err == nil {
		event.Amount = &amount
	} else {
		utils.Logger.Debug().
			Str("currency", item.Amount.Currency).
			Str("psp_reference", item.PSPReference).
			Msg("unrecognized currency, amount left unset")
	}

	return ns.consumer(ctx, event)
}
