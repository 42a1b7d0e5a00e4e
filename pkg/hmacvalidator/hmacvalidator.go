// Package hmacvalidator authenticates processor webhook notifications with
// HMAC-SHA256 over a shared secret provisioned out-of-band.
package hmacvalidator

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gamescriptai/payment-webhook-service/pkg/webhook"
)

// SignatureKey is the additionalData entry carrying an item's signature.
const SignatureKey = "hmacSignature"

// ErrInvalidKey means the configured secret is not valid hexadecimal. It is
// only returned by New; a constructed Validator cannot fail at runtime.
var ErrInvalidKey = errors.New("hmac secret key must be hex encoded")

// Validator holds the decoded secret key. It is immutable after construction
// and safe to share across any number of concurrent verification calls.
type Validator struct {
	key []byte
}

// New decodes the hex secret once. Applications should construct a single
// Validator per key at startup and refuse to start on error.
func New(secretKeyHex string) (*Validator, error) {
	key, err := hex.DecodeString(secretKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &Validator{key: key}, nil
}

// ValidateNotification verifies the signature an item carries under
// SignatureKey in its additionalData. A missing or non-string signature is
// treated the same as a wrong one: the item is rejected.
func (v *Validator) ValidateNotification(item webhook.NotificationItem) bool {
	carried, ok := item.AdditionalData[SignatureKey].(string)
	if !ok || carried == "" {
		return false
	}
	return equal(v.NotificationSignature(item), carried)
}

// ValidatePayload verifies an out-of-band signature (typically from an HTTP
// header) computed over the raw, unmodified payload bytes.
func (v *Validator) ValidatePayload(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, v.key)
	mac.Write(payload)
	return equal(base64.StdEncoding.EncodeToString(mac.Sum(nil)), signature)
}

// ValidateKeyValuePairs verifies a signature over an arbitrary string map
// using the sorted key-value canonicalization.
func (v *Validator) ValidateKeyValuePairs(pairs map[string]string, signature string) bool {
	return equal(v.signature(keyValueSigningString(pairs)), signature)
}

// NotificationSignature computes the expected signature for an item. Exposed
// so merchants can sign synthetic notifications in integration tests.
func (v *Validator) NotificationSignature(item webhook.NotificationItem) string {
	return v.signature(notificationSigningString(item))
}

func (v *Validator) signature(canonical string) string {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Forged signatures are the common case here, so mismatches are results, not
// errors. hmac.Equal keeps the comparison constant-time.
func equal(expected, got string) bool {
	return hmac.Equal([]byte(expected), []byte(got))
}
