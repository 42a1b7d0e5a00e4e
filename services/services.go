package services

import (
	"context"

	"github.com/gamescriptai/payment-webhook-service/config"
	"github.com/gamescriptai/payment-webhook-service/models"
	"github.com/gamescriptai/payment-webhook-service/queue"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

// EventConsumer receives verified events. Business logic (reconciliation,
// order-state transitions, fraud alerting) lives behind this hook, outside
// this service.
type EventConsumer func(ctx context.Context, event *models.VerifiedEvent) error

type Services struct {
	Config   *config.Config
	Queue    queue.Queue
	Consumer EventConsumer
}

func NewServices(cfg *config.Config, q queue.Queue) *Services {
	return &Services{
		Config:   cfg,
		Queue:    q,
		Consumer: logConsumer,
	}
}

func (s *Services) StartWorkers(ctx context.Context) {
	worker := s.NotificationWorker()
	go func() {
		if err := worker.StartWorker(ctx); err != nil && ctx.Err() == nil {
			utils.Logger.Error().Err(err).Msg("notification worker stopped")
		}
	}()
}

// logConsumer is the default consumer: it only records the event. Integrating
// applications replace it with their own hand-off.
func logConsumer(ctx context.Context, event *models.VerifiedEvent) error {
	utils.Logger.Info().
		Str("event_code", event.RawEventCode).
		Str("psp_reference", event.PSPReference).
		Str("merchant_reference", event.MerchantReference).
		Bool("success", event.Success).
		Bool("live", event.Live).
		Msg("verified event delivered")
	return nil
}
