// Package models defines data structures used throughout the application.
package models

import "time"

// SessionState classifies the lifecycle of a WhatsApp connection as observed
// through the upstream status endpoint.
type SessionState string

const (
	// SessionStateLoading is the initial state: the last status poll carried
	// neither a connected marker nor a QR payload.
	SessionStateLoading SessionState = "loading"
	// SessionStateAwaitingQR means a QR payload is available for scanning.
	SessionStateAwaitingQR SessionState = "qrcode"
	// SessionStateConnected means the upstream reported a connected marker.
	SessionStateConnected SessionState = "connected"
	// SessionStateDisconnected is only entered explicitly, never inferred
	// from a poll that merely lacks a QR payload.
	SessionStateDisconnected SessionState = "disconnected"
)

// NoNicheLabel is substituted for groups that carry no niche.
const NoNicheLabel = "sem nicho definido"

// Session is one WhatsApp connection instance tracked by the registry.
type Session struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	State      SessionState `json:"state"`
	QRCode     string       `json:"qrcode,omitempty"`
	GroupCount int          `json:"group_count"`
}

// Group is a WhatsApp group registered under a session, optionally routed
// to a niche.
type Group struct {
	SessionID string `json:"session_id"`
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
	Niche     string `json:"niche,omitempty"`
	Active    bool   `json:"active"`
}

// NicheConfig is the dispatch configuration for one (session, niche) pair.
// Records returned by the upstream carry no session field; the owning
// session id is attached at fetch time, before any merging.
type NicheConfig struct {
	SessionID       string  `json:"session_id"`
	Niche           string  `json:"niche"`
	IntervalMinutes int     `json:"interval_minutes"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Paused          bool    `json:"paused"`
	Groups          []Group `json:"groups"`
}

// QueueItem is a scraped offer waiting to be dispatched.
type QueueItem struct {
	SessionID     string    `json:"session_id"`
	ID            string    `json:"id"`
	ProductName   string    `json:"product_name"`
	ImageURL      string    `json:"image_url"`
	CurrentPrice  float64   `json:"current_price"`
	OriginalPrice float64   `json:"original_price"`
	Discount      float64   `json:"discount"`
	FreeShipping  bool      `json:"free_shipping"`
	AffiliateLink string    `json:"affiliate_link"`
	Niche         string    `json:"niche,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryStatus is the delivery status of a dispatched offer.
type HistoryStatus string

const (
	HistoryStatusPending HistoryStatus = "pending"
	HistoryStatusSent    HistoryStatus = "sent"
	HistoryStatusFailed  HistoryStatus = "failed"
)

// HistoryItem is one entry of the delivery history.
type HistoryItem struct {
	SessionID   string        `json:"session_id"`
	ID          string        `json:"id"`
	ProductName string        `json:"product_name"`
	Niche       string        `json:"niche,omitempty"`
	Status      HistoryStatus `json:"status"`
	SentAt      *time.Time    `json:"sent_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// DisplayTime is the time-of-day shown for a history entry. Pending and
// failed items have no send timestamp, so creation time is used instead.
func (h *HistoryItem) DisplayTime() time.Time {
	if h.SentAt != nil {
		return *h.SentAt
	}
	return h.CreatedAt
}

// DispatchStats are the numeric delivery counters for one session, or the
// field-wise sum across sessions under the all-sessions scope.
type DispatchStats struct {
	Pending   int `json:"pending"`
	SentToday int `json:"sent_today"`
	Failures  int `json:"failures"`
}

// Add accumulates another session's counters field-wise.
func (s *DispatchStats) Add(other DispatchStats) {
	s.Pending += other.Pending
	s.SentToday += other.SentToday
	s.Failures += other.Failures
}
