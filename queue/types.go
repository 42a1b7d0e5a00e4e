package queue

import (
	"context"
	"encoding/json"
	"time"
)

type JobType string

const (
	JobTypeNotification JobType = "notification"
)

type Job struct {
	ID        string
	Type      JobType
	Payload   json.RawMessage
	Attempts  int
	CreatedAt time.Time

	// broker acknowledgement hooks, set by backends that support them
	ack  func()
	nack func(requeue bool)
}

type JobHandler func(ctx context.Context, job *Job) error

type Queue interface {
	Enqueue(ctx context.Context, jobType JobType, payload interface{}) error
	Dequeue(ctx context.Context, jobType JobType, timeout time.Duration) (*Job, error)
	Process(ctx context.Context, jobType JobType, handler JobHandler, timeout time.Duration) error
	Retry(ctx context.Context, job *Job) error
}

// NotificationJobPayload is one verified notification item handed off to the
// downstream consumer. Item carries the full wire-format item for consumers
// that need fields beyond the summary.
type NotificationJobPayload struct {
	Live                string          `json:"live"`
	EventCode           string          `json:"event_code"`
	PSPReference        string          `json:"psp_reference"`
	MerchantAccountCode string          `json:"merchant_account_code"`
	MerchantReference   string          `json:"merchant_reference"`
	Success             string          `json:"success"`
	Item                json.RawMessage `json:"item"`
}
