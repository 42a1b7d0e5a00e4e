package webhook

// EventCode is the closed set of notification event types this service knows
// how to route. The wire field on NotificationItem stays an open string; use
// ParseEventCode for exhaustive matching.
type EventCode string

const (
	EventCodeAuthorisation            EventCode = "AUTHORISATION"
	EventCodeCancellation             EventCode = "CANCELLATION"
	EventCodeCapture                  EventCode = "CAPTURE"
	EventCodeCaptureFailed            EventCode = "CAPTURE_FAILED"
	EventCodeRefund                   EventCode = "REFUND"
	EventCodeRefundFailed             EventCode = "REFUND_FAILED"
	EventCodeCancelOrRefund           EventCode = "CANCEL_OR_REFUND"
	EventCodeChargeback               EventCode = "CHARGEBACK"
	EventCodeChargebackReversed       EventCode = "CHARGEBACK_REVERSED"
	EventCodeNotificationOfChargeback EventCode = "NOTIFICATION_OF_CHARGEBACK"
	EventCodeOrderOpened              EventCode = "ORDER_OPENED"
	EventCodeOrderClosed              EventCode = "ORDER_CLOSED"
	EventCodePayoutThirdparty         EventCode = "PAYOUT_THIRDPARTY"
	EventCodeReportAvailable          EventCode = "REPORT_AVAILABLE"
)

var knownEventCodes = map[string]EventCode{
	string(EventCodeAuthorisation):            EventCodeAuthorisation,
	string(EventCodeCancellation):             EventCodeCancellation,
	string(EventCodeCapture):                  EventCodeCapture,
	string(EventCodeCaptureFailed):            EventCodeCaptureFailed,
	string(EventCodeRefund):                   EventCodeRefund,
	string(EventCodeRefundFailed):             EventCodeRefundFailed,
	string(EventCodeCancelOrRefund):           EventCodeCancelOrRefund,
	string(EventCodeChargeback):               EventCodeChargeback,
	string(EventCodeChargebackReversed):       EventCodeChargebackReversed,
	string(EventCodeNotificationOfChargeback): EventCodeNotificationOfChargeback,
	string(EventCodeOrderOpened):              EventCodeOrderOpened,
	string(EventCodeOrderClosed):              EventCodeOrderClosed,
	string(EventCodePayoutThirdparty):         EventCodePayoutThirdparty,
	string(EventCodeReportAvailable):          EventCodeReportAvailable,
}

// ParseEventCode maps a wire event code into the closed set. Unknown codes
// are not an error; the second return is false and callers fall back to
// generic handling.
func ParseEventCode(s string) (EventCode, bool) {
	code, ok := knownEventCodes[s]
	return code, ok
}

func (e EventCode) String() string {
	return string(e)
}
