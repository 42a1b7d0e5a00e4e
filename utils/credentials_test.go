package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashWebhookPassword(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		hash, err := HashWebhookPassword("s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "s3cret", hash)
	})

	t.Run("empty password", func(t *testing.T) {
		hash, err := HashWebhookPassword("")
		assert.Error(t, err)
		assert.Empty(t, hash)
	})

	t.Run("same password produces different hashes", func(t *testing.T) {
		hash1, err1 := HashWebhookPassword("s3cret")
		require.NoError(t, err1)

		hash2, err2 := HashWebhookPassword("s3cret")
		require.NoError(t, err2)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestVerifyWebhookCredentials(t *testing.T) {
	hash, err := HashWebhookPassword("s3cret")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		assert.NoError(t, VerifyWebhookCredentials("processor", hash, "processor", "s3cret"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.Error(t, VerifyWebhookCredentials("processor", hash, "processor", "wrong"))
	})

	t.Run("wrong username", func(t *testing.T) {
		assert.Error(t, VerifyWebhookCredentials("processor", hash, "intruder", "s3cret"))
	})

	t.Run("credentials not configured", func(t *testing.T) {
		assert.Error(t, VerifyWebhookCredentials("", "", "processor", "s3cret"))
	})
}
