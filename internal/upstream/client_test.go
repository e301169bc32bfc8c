package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/config"
	"github.com/zapdeals/console/internal/upstream"
)

func newTestClient(t *testing.T, handler http.Handler) *upstream.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 100,
		},
	}
	return upstream.NewClient(cfg, zap.NewNop())
}

func TestClient_ListSessions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/session/list", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]upstream.SessionInfo{
			{ID: "11987654321", Status: "connected"},
			{ID: "21987654321", Status: "starting", QRCode: "qr-payload"},
		})
	}))

	sessions, err := client.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "11987654321", sessions[0].ID)
	assert.Equal(t, "qr-payload", sessions[1].QRCode)
}

func TestClient_StartSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/session/start", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req upstream.StartSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "11987654321", req.UserID)

		w.WriteHeader(http.StatusCreated)
	}))

	err := client.StartSession(context.Background(), "11987654321")
	assert.NoError(t, err)
}

func TestClient_DispatchQueue(t *testing.T) {
	t.Run("without a niche filter", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/dispatch/queue/s1", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]upstream.QueueItem{{ID: "q1"}})
		}))

		items, err := client.DispatchQueue(context.Background(), "s1", "")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "q1", items[0].ID)
	})

	t.Run("niche filter becomes a path segment", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/dispatch/queue/s1/Tech", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]upstream.QueueItem{})
		}))

		_, err := client.DispatchQueue(context.Background(), "s1", "Tech")
		assert.NoError(t, err)
	})

	t.Run("niche with spaces is path-escaped", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/dispatch/queue/s1/sem nicho definido", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]upstream.QueueItem{})
		}))

		_, err := client.DispatchQueue(context.Background(), "s1", "sem nicho definido")
		assert.NoError(t, err)
	})
}

func TestClient_SaveDispatchConfig(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dispatch/config", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "s1", body["sessionId"])
		assert.Equal(t, "Tech", body["niche"])
		assert.Equal(t, float64(15), body["interval"])

		w.WriteHeader(http.StatusOK)
	}))

	err := client.SaveDispatchConfig(context.Background(), upstream.ConfigUpsert{
		SessionID: "s1",
		Niche:     "Tech",
		Interval:  15,
		Start:     "08:00",
		End:       "20:00",
	})
	assert.NoError(t, err)
}

func TestClient_DeleteDispatchConfig(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/dispatch/config/s1/Tech", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteDispatchConfig(context.Background(), "s1", "Tech")
	assert.NoError(t, err)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListSessions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 500")
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := client.DispatchStats(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_CircuitBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      1,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.5,
			ConsecutiveFails: 3,
		},
	}
	client := upstream.NewClient(cfg, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := client.ListSessions(context.Background())
		require.Error(t, err)
	}

	_, err := client.ListSessions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrUpstreamUnavailable)

	state, _, _ := client.CircuitBreakerStatus()
	assert.Equal(t, "open", state)
}
