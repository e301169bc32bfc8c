// Package handler provides HTTP request handlers for the console API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/dispatch"
	"github.com/zapdeals/console/internal/middleware"
	"github.com/zapdeals/console/internal/service"
	"github.com/zapdeals/console/internal/session"
)

const (
	errorCodeInvalidPhone        = "INVALID_PHONE_NUMBER"
	errorCodeSessionLimitReached = "SESSION_LIMIT_REACHED"
	errorCodeSessionNotFound     = "SESSION_NOT_FOUND"
	errorCodeReadOnlyScope       = "READ_ONLY_SCOPE"
	errorCodeNicheRequired       = "NICHE_REQUIRED"
	errorCodeInvalidBody         = "INVALID_REQUEST_BODY"
	errorCodeUpstream            = "UPSTREAM_ERROR"
)

const (
	errorMessageInvalidPhone        = "Phone number must contain exactly 11 digits (DDD + number)"
	errorMessageSessionLimitReached = "Session limit reached, remove a session before creating another"
	errorMessageSessionNotFound     = "Session not found"
	errorMessageReadOnlyScope       = "The all-sessions view is read-only, choose a specific session"
	errorMessageNicheRequired       = "Niche is required"
	errorMessageInvalidBody         = "Request body is invalid"
	errorMessageUpstream            = "The dispatch service did not answer"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes mounts every console endpoint on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)
	r.Get("/overview", h.GetOverview)

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", h.ListSessions)
		r.Post("/", h.CreateSession)
		r.Delete("/{sessionID}", h.DeleteSession)
		r.Post("/{sessionID}/reconnect", h.ReconnectSession)
	})

	r.Get("/niches", h.ListNiches)

	r.Route("/dispatch", func(r chi.Router) {
		r.Get("/configs", h.ListConfigs)
		r.Put("/configs/{sessionID}/{niche}", h.SaveConfig)
		r.Delete("/configs/{sessionID}/{niche}", h.DeleteConfig)
		r.Get("/queue", h.GetQueue)
		r.Get("/history", h.GetHistory)
		r.Get("/stats", h.GetStats)
	})

	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	if health.Status == service.HealthStateUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	render.JSON(w, r, health)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.service.Session.List()

	render.JSON(w, r, SessionListResponse{
		Sessions:    sessions,
		Count:       len(sessions),
		MaxSessions: h.service.Session.MaxSessions(),
	})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody)
		return
	}

	created, err := h.service.Session.Create(r.Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidPhoneNumber):
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPhone, errorMessageInvalidPhone)
		case errors.Is(err, session.ErrSessionLimitReached):
			h.sendError(w, r, http.StatusConflict, errorCodeSessionLimitReached, errorMessageSessionLimitReached)
		default:
			h.logUpstreamError(r, "Failed to create session", err)
			h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if err := h.service.Session.Remove(r.Context(), id); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeSessionNotFound, errorMessageSessionNotFound)
			return
		}
		// The registry entry is already gone; report the upstream failure.
		h.logUpstreamError(r, "Failed to delete session upstream", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
		return
	}

	render.NoContent(w, r)
}

func (h *Handler) ReconnectSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if err := h.service.Session.Reconnect(r.Context(), id); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeSessionNotFound, errorMessageSessionNotFound)
			return
		}
		h.logUpstreamError(r, "Failed to reconnect session", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
		return
	}

	render.JSON(w, r, map[string]string{"status": "reconnecting"})
}

func (h *Handler) ListNiches(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromRequest(r)

	niches := h.service.Dispatch.Niches(r.Context(), scope)
	render.JSON(w, r, NicheListResponse{
		Scope:  string(scope),
		Niches: niches,
	})
}

func (h *Handler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromRequest(r)

	configs := h.service.Dispatch.Configs(r.Context(), scope)
	render.JSON(w, r, ConfigListResponse{
		Scope:    string(scope),
		ReadOnly: scope.IsAll(),
		Configs:  configs,
	})
}

func (h *Handler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	niche := chi.URLParam(r, "niche")

	var params dispatch.SaveParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody)
		return
	}

	configs, err := h.service.Dispatch.SaveConfig(r.Context(), sessionID, niche, params)
	if err != nil {
		h.handleConfigError(w, r, "Failed to save dispatch config", err)
		return
	}

	render.JSON(w, r, ConfigListResponse{
		Scope:   sessionID,
		Configs: configs,
	})
}

func (h *Handler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	niche := chi.URLParam(r, "niche")

	configs, err := h.service.Dispatch.DeleteConfig(r.Context(), sessionID, niche)
	if err != nil {
		h.handleConfigError(w, r, "Failed to delete dispatch config", err)
		return
	}

	render.JSON(w, r, ConfigListResponse{
		Scope:   sessionID,
		Configs: configs,
	})
}

func (h *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromRequest(r)
	niche := r.URL.Query().Get("niche")

	items := h.service.Dispatch.Queue(r.Context(), scope, niche)
	render.JSON(w, r, QueueResponse{
		Scope: string(scope),
		Niche: niche,
		Items: items,
	})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromRequest(r)

	items, err := h.service.Dispatch.History(r.Context(), scope)
	if err != nil {
		h.logUpstreamError(r, "Failed to load dispatch history", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
		return
	}

	render.JSON(w, r, HistoryResponse{
		Scope: string(scope),
		Items: items,
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromRequest(r)

	stats, err := h.service.Dispatch.Stats(r.Context(), scope)
	if err != nil {
		h.logUpstreamError(r, "Failed to load dispatch stats", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
		return
	}

	render.JSON(w, r, stats)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Dispatch.Overview(r.Context())
	if err != nil {
		h.logUpstreamError(r, "Failed to build overview", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
		return
	}

	render.JSON(w, r, overview)
}

func (h *Handler) handleConfigError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	switch {
	case errors.Is(err, dispatch.ErrReadOnlyScope):
		h.sendError(w, r, http.StatusBadRequest, errorCodeReadOnlyScope, errorMessageReadOnlyScope)
	case errors.Is(err, dispatch.ErrNicheRequired):
		h.sendError(w, r, http.StatusBadRequest, errorCodeNicheRequired, errorMessageNicheRequired)
	default:
		h.logUpstreamError(r, logMsg, err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeUpstream, errorMessageUpstream)
	}
}

func (h *Handler) logUpstreamError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func scopeFromRequest(r *http.Request) dispatch.Scope {
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		return dispatch.ScopeAll
	}
	return dispatch.Scope(scope)
}
