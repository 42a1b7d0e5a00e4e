package webhook

import (
	"fmt"

	"github.com/gamescriptai/payment-webhook-service/pkg/money"
)

// Boolean fields on the processor's wire format are the string literals
// "true" and "false", never native JSON booleans.
const (
	LiteralTrue  = "true"
	LiteralFalse = "false"
)

// Webhook is the envelope of a processor notification body. It is decoded
// once per inbound request and not mutated afterwards.
type Webhook struct {
	Live              string                      `json:"live" validate:"required,oneof=true false"`
	NotificationItems []NotificationItemContainer `json:"notificationItems" validate:"required,min=1,dive"`
}

// NotificationItemContainer matches the extra nesting level the processor
// wraps around each item.
type NotificationItemContainer struct {
	NotificationRequestItem NotificationItem `json:"NotificationRequestItem"`
}

// NotificationItem is one payment-lifecycle event. EventCode stays an open
// string so unknown processor event types still decode; see ParseEventCode
// for the closed set. AdditionalData may carry the item's HMAC signature.
type NotificationItem struct {
	PSPReference        string         `json:"pspReference" validate:"required"`
	OriginalReference   string         `json:"originalReference,omitempty"`
	MerchantAccountCode string         `json:"merchantAccountCode" validate:"required"`
	MerchantReference   string         `json:"merchantReference"`
	Amount              Amount         `json:"amount"`
	EventCode           string         `json:"eventCode" validate:"required"`
	Reason              string         `json:"reason"`
	Success             string         `json:"success" validate:"required,oneof=true false"`
	PaymentMethod       string         `json:"paymentMethod"`
	Operations          []string       `json:"operations"`
	AdditionalData      map[string]any `json:"additionalData"`
}

// IsLive reports whether the notification originates from the live
// environment. The flag is checked lexically and anything other than the two
// exact literals is an error.
func (w *Webhook) IsLive() (bool, error) {
	return parseBoolLiteral(w.Live)
}

// IsSuccess reports the item's success flag, rejecting anything other than
// the two exact wire literals.
func (n *NotificationItem) IsSuccess() (bool, error) {
	return parseBoolLiteral(n.Success)
}

func parseBoolLiteral(s string) (bool, error) {
	switch s {
	case LiteralTrue:
		return true, nil
	case LiteralFalse:
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean literal: %q", s)
	}
}

// Amount is the processor's minor-unit amount. It is deliberately not
// money.Money: the currency code is an open string on the wire.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// ToMoney converts into the currency-aware type; it fails for currency codes
// this service does not settle in.
func (a Amount) ToMoney() (money.Money, error) {
	currency, err := money.ParseCurrency(a.Currency)
	if err != nil {
		return money.Money{}, fmt.Errorf("convert amount: %w", err)
	}
	return money.NewMoney(a.Value, currency), nil
}
