package hmacvalidator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gamescriptai/payment-webhook-service/pkg/webhook"
)

// escape guards field boundaries in canonical signing strings. Backslashes
// are doubled before colons are escaped so the backslash inserted for a
// colon is never itself re-escaped. Escaping is not idempotent; it must run
// exactly once per field, before joining.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `:`, `\:`)
}

// notificationSigningString builds the canonical string for a structured
// notification item: eight individually escaped fields joined by colons, in
// the order mandated by the processor.
func notificationSigningString(item webhook.NotificationItem) string {
	fields := []string{
		item.PSPReference,
		item.OriginalReference,
		item.MerchantAccountCode,
		item.MerchantReference,
		strconv.FormatInt(item.Amount.Value, 10),
		item.Amount.Currency,
		item.EventCode,
		item.Success,
	}
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escape(f)
	}
	return strings.Join(escaped, ":")
}

// keyValueSigningString builds the canonical string for an arbitrary string
// map: keys sorted byte-wise ascending, every key and value escaped once,
// then <joined-keys>:<joined-values>.
func keyValueSigningString(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	escapedKeys := make([]string, len(keys))
	escapedValues := make([]string, len(keys))
	for i, k := range keys {
		escapedKeys[i] = escape(k)
		escapedValues[i] = escape(pairs[k])
	}
	return strings.Join(escapedKeys, ":") + ":" + strings.Join(escapedValues, ":")
}
