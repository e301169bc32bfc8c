package upstream

import "time"

// SessionInfo is one entry of GET /session/list.
type SessionInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	QRCode string `json:"qrcode,omitempty"`
}

// SessionStatus is the payload of GET /session/status/{id}.
type SessionStatus struct {
	Status string `json:"status"`
	QRCode string `json:"qrcode,omitempty"`
}

// Group is one entry of GET /niche-groups/{sessionId}.
type Group struct {
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
	Niche     string `json:"niche,omitempty"`
	Active    bool   `json:"active"`
}

// NicheConfig is one entry of GET /dispatch/config/{sessionId}. The record
// carries no session field; callers must tag it with the session they
// fetched it for.
type NicheConfig struct {
	Niche      string `json:"niche"`
	IntervalMS int64  `json:"interval_ms"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Paused     bool   `json:"paused"`
}

// ConfigUpsert is the body of POST /dispatch/config. Interval is minutes.
type ConfigUpsert struct {
	SessionID string `json:"sessionId"`
	Niche     string `json:"niche"`
	Interval  int    `json:"interval"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Paused    bool   `json:"paused"`
}

// QueueItem is one entry of GET /dispatch/queue/{sessionId}.
type QueueItem struct {
	ID            string    `json:"id"`
	ProductName   string    `json:"product_name"`
	ImageURL      string    `json:"image_url"`
	CurrentPrice  float64   `json:"current_price"`
	OriginalPrice float64   `json:"original_price"`
	Discount      float64   `json:"discount"`
	FreeShipping  bool      `json:"free_shipping"`
	AffiliateLink string    `json:"link"`
	Niche         string    `json:"niche,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryItem is one entry of GET /dispatch/history/{sessionId}.
type HistoryItem struct {
	ID          string     `json:"id"`
	ProductName string     `json:"product_name"`
	Niche       string     `json:"niche,omitempty"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Stats is the payload of GET /dispatch/stats/{sessionId}.
type Stats struct {
	Pending   int `json:"pending"`
	SentToday int `json:"sent_today"`
	Failures  int `json:"failures"`
}

// StartSessionRequest is the body of POST /session/start.
type StartSessionRequest struct {
	UserID string `json:"userId"`
}
