// Package session tracks the lifecycle of WhatsApp connections by polling
// the upstream status endpoint and reconciling results into a local registry.
package session

import (
	"errors"
	"strings"

	"github.com/zapdeals/console/internal/models"
)

var (
	ErrInvalidPhoneNumber  = errors.New("phone number must contain exactly 11 digits")
	ErrSessionLimitReached = errors.New("session limit reached")
	ErrSessionNotFound     = errors.New("session not found")
)

// phoneNumberLength is the normalized length of a Brazilian number with DDD.
const phoneNumberLength = 11

// IsConnectedStatus is the single connected predicate. The upstream reports
// two synonymous spellings; both mean the same thing everywhere.
func IsConnectedStatus(status string) bool {
	return status == "connected" || status == "inChat"
}

// Classify maps one status response onto the session state machine.
// Disconnected is never inferred here: a poll that carries neither a
// connected marker nor a QR payload yields Loading, so a transient empty
// response cannot flap a session into Disconnected.
func Classify(status, qrcode string) models.SessionState {
	switch {
	case IsConnectedStatus(status):
		return models.SessionStateConnected
	case qrcode != "":
		return models.SessionStateAwaitingQR
	default:
		return models.SessionStateLoading
	}
}

// NormalizePhone strips everything but digits and validates the result.
// Validation is local; it happens before any network call.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) != phoneNumberLength {
		return "", ErrInvalidPhoneNumber
	}
	return digits, nil
}
