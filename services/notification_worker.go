package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gamescriptai/payment-webhook-service/queue"
	"github.com/gamescriptai/payment-webhook-service/utils"
)

type NotificationWorker interface {
	ProcessNotificationJob(ctx context.Context, job *queue.Job) error
	StartWorker(ctx context.Context) error
}

type notificationWorker struct {
	service NotificationService
	queue   queue.Queue
}

func (s *Services) NotificationWorker() NotificationWorker {
	return &notificationWorker{
		service: s.Notification(),
		queue:   s.Queue,
	}
}

func (nw *notificationWorker) ProcessNotificationJob(ctx context.Context, job *queue.Job) error {
	var payload queue.NotificationJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal notification job payload: %w", err)
	}

	return nw.service.ProcessNotification(ctx, payload)
}

func (nw *notificationWorker) StartWorker(ctx context.Context) error {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := nw.queue.Process(ctx, queue.JobTypeNotification, nw.ProcessNotificationJob, 5*time.Second); err != nil {
				utils.Logger.Error().Err(err).Str("job_type", string(queue.JobTypeNotification)).Msg("error processing notification job")
			}
		}
	}
}
