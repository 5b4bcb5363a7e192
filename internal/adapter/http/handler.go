package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"jobcast/internal/adapter/usecase"
	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// Dispatcher sends a campaign to a channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, campaignID int64, channelID string, offers []domain.Offer) (*usecase.DispatchResult, error)
}

// AuditReader lists the audit trail of a campaign.
type AuditReader interface {
	ListByCampaign(ctx context.Context, campaignID int64, limit int) ([]domain.AuditRecord, error)
}

// Deps groups what the admin API serves. Dispatcher, Audit and Metrics are
// optional; their routes answer 501 when unset.
type Deps struct {
	Limits     port.LimitsUseCase
	Dispatcher Dispatcher
	Audit      AuditReader
	Metrics    http.Handler
}

// Handler is the inbound HTTP adapter of the limits engine. It exposes the
// operational surface of port.LimitsUseCase on a chi.Router.
type Handler struct {
	deps   Deps
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{deps: deps, logger: logger.With(slog.String("mod", "http"))}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api/v1/limits", func(r chi.Router) {
		r.Post("/check-all", h.handleCheckAll)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Post("/check", h.handleCheck)
			r.Post("/pause", h.handlePause)
			r.Post("/resume", h.handleResume)
			r.Post("/enforce-cpc", h.handleEnforceCPC)
			r.Post("/dispatch/{channel}", h.handleDispatch)
			r.Get("/audit", h.handleAudit)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorBody struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

// writeError maps domain errors onto status codes. Unknown errors are
// logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		vErr   *domain.ValidationError
		limErr *domain.LimitExceededError
		chErr  *domain.ExternalChannelError
	)
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "campaign not found"})
	case errors.As(err, &vErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Problems: vErr.Problems})
	case errors.As(err, &limErr):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: limErr.Error()})
	case errors.Is(err, port.ErrLeaseHeld):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "campaign is being processed, retry later"})
	case errors.As(err, &chErr):
		h.logger.Warn("channel error", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: chErr.Error()})
	default:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
