package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Webhook endpoints can carry HTTP basic auth in addition to the HMAC
// signature. The password is configured as a bcrypt hash, never plaintext.

func HashWebhookPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash webhook password: %w", err)
	}

	return string(hash), nil
}

func VerifyWebhookCredentials(expectedUsername, passwordHash, username, password string) error {
	if expectedUsername == "" || passwordHash == "" {
		return errors.New("webhook credentials not configured")
	}

	userOK := subtle.ConstantTimeCompare([]byte(expectedUsername), []byte(username)) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil || !userOK {
		return errors.New("invalid webhook credentials")
	}

	return nil
}
