package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamescriptai/payment-webhook-service/models"
	"github.com/gamescriptai/payment-webhook-service/pkg/money"
	"github.com/gamescriptai/payment-webhook-service/pkg/webhook"
	"github.com/gamescriptai/payment-webhook-service/queue"
)

func notificationPayload(t *testing.T, item webhook.NotificationItem, live string) queue.NotificationJobPayload {
	t.Helper()

	itemBytes, err := json.Marshal(item)
	require.NoError(t, err)

	return queue.NotificationJobPayload{
		Live:                live,
		EventCode:           item.EventCode,
		PSPReference:        item.PSPReference,
		MerchantAccountCode: item.MerchantAccountCode,
		MerchantReference:   item.MerchantReference,
		Success:             item.Success,
		Item:                itemBytes,
	}
}

func baseItem() webhook.NotificationItem {
	return webhook.NotificationItem{
		PSPReference:        "8515131751004933",
		MerchantAccountCode: "TestMerchant",
		MerchantReference:   "test-payment-123",
		Amount:              webhook.Amount{Value: 1000, Currency: "EUR"},
		EventCode:           "AUTHORISATION",
		Success:             "true",
	}
}

func TestProcessNotification(t *testing.T) {
	t.Run("known event reaches the consumer fully parsed", func(t *testing.T) {
		var got *models.VerifiedEvent
		ns := &notificationService{consumer: func(_ context.Context, event *models.VerifiedEvent) error {
			got = event
			return nil
		}}

		err := ns.ProcessNotification(context.Background(), notificationPayload(t, baseItem(), "true"))
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.True(t, got.KnownEvent)
		assert.Equal(t, webhook.EventCodeAuthorisation, got.EventCode)
		assert.Equal(t, "AUTHORISATION", got.RawEventCode)
		assert.Equal(t, "8515131751004933", got.PSPReference)
		assert.True(t, got.Success)
		assert.True(t, got.Live)
		require.NotNil(t, got.Amount)
		assert.Equal(t, money.NewMoney(1000, money.EUR), *got.Amount)
		assert.False(t, got.ReceivedAt.IsZero())
	})

	t.Run("unknown event code is delivered as generic", func(t *testing.T) {
		var got *models.VerifiedEvent
		ns := &notificationService{consumer: func(_ context.Context, event *models.VerifiedEvent) error {
			got = event
			return nil
		}}

		item := baseItem()
		item.EventCode = "SOME_NEW_EVENT"

		err := ns.ProcessNotification(context.Background(), notificationPayload(t, item, "false"))
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.False(t, got.KnownEvent)
		assert.Empty(t, got.EventCode)
		assert.Equal(t, "SOME_NEW_EVENT", got.RawEventCode)
		assert.False(t, got.Live)
	})

	t.Run("unrecognized currency leaves amount unset", func(t *testing.T) {
		var got *models.VerifiedEvent
		ns := &notificationService{consumer: func(_ context.Context, event *models.VerifiedEvent) error {
			got = event
			return nil
		}}

		item := baseItem()
		item.Amount.Currency = "JPY"

		err := ns.ProcessNotification(context.Background(), notificationPayload(t, item, "false"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.Amount)
	})

	t.Run("invalid success literal is an error", func(t *testing.T) {
		ns := &notificationService{consumer: func(context.Context, *models.VerifiedEvent) error {
			t.Fatal("consumer must not be called")
			return nil
		}}

		item := baseItem()
		item.Success = "TRUE"

		err := ns.ProcessNotification(context.Background(), notificationPayload(t, item, "false"))
		assert.Error(t, err)
	})

	t.Run("invalid live literal is an error", func(t *testing.T) {
		ns := &notificationService{consumer: func(context.Context, *models.VerifiedEvent) error {
			t.Fatal("consumer must not be called")
			return nil
		}}

		err := ns.ProcessNotification(context.Background(), notificationPayload(t, baseItem(), "live"))
		assert.Error(t, err)
	})

	t.Run("consumer error propagates", func(t *testing.T) {
		ns := &notificationService{consumer: func(context.Context, *models.VerifiedEvent) error {
			return assert.AnError
		}}

		err := ns.ProcessNotification(context.Background(), notificationPayload(t, baseItem(), "true"))
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("malformed item payload is an error", func(t *testing.T) {
		ns := &notificationService{consumer: func(context.Context, *models.VerifiedEvent) error {
			t.Fatal("consumer must not be called")
			return nil
		}}

		err := ns.ProcessNotification(context.Background(), queue.NotificationJobPayload{Item: []byte("{not json")})
		assert.Error(t, err)
	})
}

func TestNotificationWorker_ProcessNotificationJob(t *testing.T) {
	var got *models.VerifiedEvent
	nw := &notificationWorker{
		service: &notificationService{consumer: func(_ context.Context, event *models.VerifiedEvent) error {
			got = event
			return nil
		}},
	}

	payload := notificationPayload(t, baseItem(), "true")
	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	job := &queue.Job{Type: queue.JobTypeNotification, Payload: payloadBytes}
	require.NoError(t, nw.ProcessNotificationJob(context.Background(), job))
	require.NotNil(t, got)
	assert.Equal(t, "8515131751004933", got.PSPReference)

	t.Run("malformed job payload", func(t *testing.T) {
		bad := &queue.Job{Type: queue.JobTypeNotification, Payload: []byte("{not json")}
		assert.Error(t, nw.ProcessNotificationJob(context.Background(), bad))
	})
}
