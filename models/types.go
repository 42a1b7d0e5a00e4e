package models

import (
	"encoding/json"
	"time"

	"github.com/gamescriptai/payment-webhook-service/pkg/money"
	"github.com/gamescriptai/payment-webhook-service/pkg/webhook"
)

// VerifiedEvent is a notification item that passed HMAC verification,
// reshaped for downstream consumers. RawEventCode preserves the open wire
// value; EventCode is set only when KnownEvent is true. Amount is populated
// only for currencies the service settles in.
type VerifiedEvent struct {
	Live                bool
	EventCode           webhook.EventCode
	RawEventCode        string
	KnownEvent          bool
	PSPReference        string
	MerchantAccountCode string
	MerchantReference   string
	Amount              *money.Money
	Success             bool
	ReceivedAt          time.Time
	RawItem             json.RawMessage
}
