package handler

import (
	"time"

	"github.com/zapdeals/console/internal/models"
)

type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionListResponse struct {
	Sessions    []models.Session `json:"sessions"`
	Count       int              `json:"count"`
	MaxSessions int              `json:"max_sessions"`
}

type CreateSessionRequest struct {
	Phone string `json:"phone"`
}

type NicheListResponse struct {
	Scope  string   `json:"scope"`
	Niches []string `json:"niches"`
}

type ConfigListResponse struct {
	Scope    string               `json:"scope"`
	ReadOnly bool                 `json:"read_only"`
	Configs  []models.NicheConfig `json:"configs"`
}

type QueueResponse struct {
	Scope string             `json:"scope"`
	Niche string             `json:"niche,omitempty"`
	Items []models.QueueItem `json:"items"`
}

type HistoryResponse struct {
	Scope string               `json:"scope"`
	Items []models.HistoryItem `json:"items"`
}
