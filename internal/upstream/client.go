// Package upstream implements the HTTP client for the external dispatch
// service. Every response is advisory: the service owns the data and the
// console never resolves conflicts, the last successful fetch wins.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/config"
)

var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// API is the full consumed contract. Consumers depend on narrow subsets of
// it; the mocks package generates against this interface.
type API interface {
	ListSessions(ctx context.Context) ([]SessionInfo, error)
	SessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error)
	StartSession(ctx context.Context, userID string) error
	DeleteSession(ctx context.Context, sessionID string) error
	NicheGroups(ctx context.Context, sessionID string) ([]Group, error)
	DispatchConfigs(ctx context.Context, sessionID string) ([]NicheConfig, error)
	SaveDispatchConfig(ctx context.Context, req ConfigUpsert) error
	DeleteDispatchConfig(ctx context.Context, sessionID, niche string) error
	DispatchQueue(ctx context.Context, sessionID, niche string) ([]QueueItem, error)
	DispatchHistory(ctx context.Context, sessionID string) ([]HistoryItem, error)
	DispatchStats(ctx context.Context, sessionID string) (*Stats, error)
}

type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewClient(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

// CircuitBreakerStatus reports breaker state and counters for health checks.
func (c *Client) CircuitBreakerStatus() (state string, requests, failures uint32) {
	requests, failures = c.circuitBreaker.Counts()
	return c.circuitBreaker.State().String(), requests, failures
}

func (c *Client) ListSessions(ctx context.Context) ([]SessionInfo, error) {
	var sessions []SessionInfo
	if err := c.getJSON(ctx, "/session/list", &sessions); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (c *Client) SessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	var status SessionStatus
	if err := c.getJSON(ctx, "/session/status/"+url.PathEscape(sessionID), &status); err != nil {
		return nil, fmt.Errorf("failed to fetch status of session %s: %w", sessionID, err)
	}
	return &status, nil
}

func (c *Client) StartSession(ctx context.Context, userID string) error {
	if err := c.do(ctx, http.MethodPost, "/session/start", StartSessionRequest{UserID: userID}, nil); err != nil {
		return fmt.Errorf("failed to start session %s: %w", userID, err)
	}
	return nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := c.do(ctx, http.MethodDelete, "/session/"+url.PathEscape(sessionID), nil, nil); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

func (c *Client) NicheGroups(ctx context.Context, sessionID string) ([]Group, error) {
	var groups []Group
	if err := c.getJSON(ctx, "/niche-groups/"+url.PathEscape(sessionID), &groups); err != nil {
		return nil, fmt.Errorf("failed to fetch groups of session %s: %w", sessionID, err)
	}
	return groups, nil
}

func (c *Client) DispatchConfigs(ctx context.Context, sessionID string) ([]NicheConfig, error) {
	var configs []NicheConfig
	if err := c.getJSON(ctx, "/dispatch/config/"+url.PathEscape(sessionID), &configs); err != nil {
		return nil, fmt.Errorf("failed to fetch dispatch configs of session %s: %w", sessionID, err)
	}
	return configs, nil
}

func (c *Client) SaveDispatchConfig(ctx context.Context, req ConfigUpsert) error {
	if err := c.do(ctx, http.MethodPost, "/dispatch/config", req, nil); err != nil {
		return fmt.Errorf("failed to save dispatch config %s/%s: %w", req.SessionID, req.Niche, err)
	}
	return nil
}

func (c *Client) DeleteDispatchConfig(ctx context.Context, sessionID, niche string) error {
	path := "/dispatch/config/" + url.PathEscape(sessionID) + "/" + url.PathEscape(niche)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete dispatch config %s/%s: %w", sessionID, niche, err)
	}
	return nil
}

func (c *Client) DispatchQueue(ctx context.Context, sessionID, niche string) ([]QueueItem, error) {
	path := "/dispatch/queue/" + url.PathEscape(sessionID)
	if niche != "" {
		path += "/" + url.PathEscape(niche)
	}

	var items []QueueItem
	if err := c.getJSON(ctx, path, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch dispatch queue of session %s: %w", sessionID, err)
	}
	return items, nil
}

func (c *Client) DispatchHistory(ctx context.Context, sessionID string) ([]HistoryItem, error) {
	var items []HistoryItem
	if err := c.getJSON(ctx, "/dispatch/history/"+url.PathEscape(sessionID), &items); err != nil {
		return nil, fmt.Errorf("failed to fetch dispatch history of session %s: %w", sessionID, err)
	}
	return items, nil
}

func (c *Client) DispatchStats(ctx context.Context, sessionID string) (*Stats, error) {
	var stats Stats
	if err := c.getJSON(ctx, "/dispatch/stats/"+url.PathEscape(sessionID), &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch dispatch stats of session %s: %w", sessionID, err)
	}
	return &stats, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// do executes one round-trip through the circuit breaker and decodes the
// response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.circuitBreaker.Execute(ctx, func() error {
		var reqBody io.Reader
		if body != nil {
			jsonData, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("failed to marshal request: %w", err)
			}
			reqBody = bytes.NewBuffer(jsonData)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("unexpected status code %d from %s %s", resp.StatusCode, method, path)
		}

		if out == nil {
			return nil
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
		return nil
	})
}
