package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jobcast/internal/core/domain"
)

type dispatchRequest struct {
	Offers []domain.Offer `json:"offers"`
}

// handleDispatch builds, validates and sends the campaign to the channel in
// the path. A payload rejected by validation answers 422 with the full
// validation report.
func (h *Handler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	if h.deps.Dispatcher == nil {
		http.Error(w, "dispatch not configured", http.StatusNotImplemented)
		return
	}
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	res, err := h.deps.Dispatcher.Dispatch(r.Context(), id, chi.URLParam(r, "channel"), req.Offers)
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) && res != nil {
		h.writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, res)
}

// handleAudit returns the latest audit records of a campaign. The optional
// limit query parameter defaults to 100.
func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	if h.deps.Audit == nil {
		http.Error(w, "audit log not configured", http.StatusNotImplemented)
		return
	}
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.deps.Audit.ListByCampaign(r.Context(), id, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	h.writeJSON(w, http.StatusOK, records)
}
