package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapdeals/console/internal/models"
	"github.com/zapdeals/console/internal/session"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		qrcode   string
		expected models.SessionState
	}{
		{
			name:     "connected marker",
			status:   "connected",
			expected: models.SessionStateConnected,
		},
		{
			name:     "inChat is connected too",
			status:   "inChat",
			expected: models.SessionStateConnected,
		},
		{
			name:     "connected wins over a stale qr payload",
			status:   "connected",
			qrcode:   "data:image/png;base64,abc",
			expected: models.SessionStateConnected,
		},
		{
			name:     "qr payload without connected marker",
			status:   "starting",
			qrcode:   "data:image/png;base64,abc",
			expected: models.SessionStateAwaitingQR,
		},
		{
			name:     "neither marker nor qr yields loading, never disconnected",
			status:   "",
			expected: models.SessionStateLoading,
		},
		{
			name:     "unknown status without qr yields loading",
			status:   "restoring",
			expected: models.SessionStateLoading,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, session.Classify(tt.status, tt.qrcode))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	first := session.Classify("connected", "")
	second := session.Classify("connected", "")
	assert.Equal(t, first, second)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{
			name:     "formatted number",
			raw:      "(11) 98765-4321",
			expected: "11987654321",
		},
		{
			name:     "digits only",
			raw:      "11987654321",
			expected: "11987654321",
		},
		{
			name:      "too short",
			raw:       "(11) 8765-4321",
			expectErr: true,
		},
		{
			name:      "too long",
			raw:       "+55 11 98765-4321",
			expectErr: true,
		},
		{
			name:      "empty",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := session.NormalizePhone(tt.raw)
			if tt.expectErr {
				assert.ErrorIs(t, err, session.ErrInvalidPhoneNumber)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
