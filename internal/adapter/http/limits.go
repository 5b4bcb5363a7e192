package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// handleCheck runs a full limit check for one campaign and returns the
// CheckResult. A check skipped because another worker holds the campaign
// is still a 200 with skipped set.
func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	res, err := h.deps.Limits.CheckCampaignLimits(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleCheckAll runs the batch check synchronously.
func (h *Handler) handleCheckAll(w http.ResponseWriter, r *http.Request) {
	res := h.deps.Limits.CheckAllActiveCampaigns(r.Context())
	status := http.StatusOK
	if res.Error != "" {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, res)
}

type pauseRequest struct {
	Reason string         `json:"reason"`
	Data   map[string]any `json:"data"`
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req pauseRequest
	if err := decodeOptional(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		req.Reason = "manual"
	}
	out, err := h.deps.Limits.PauseCampaignDueToLimits(r.Context(), id, req.Reason, req.Data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.deps.Limits.ResumeCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type enforceCPCRequest struct {
	MaxCPC float64 `json:"maxCpc"`
	Reason string  `json:"reason"`
}

func (h *Handler) handleEnforceCPC(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req enforceCPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		req.Reason = "manual"
	}
	out, err := h.deps.Limits.EnforceCPCLimits(r.Context(), id, req.MaxCPC, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// decodeOptional decodes a JSON body into v; an empty body leaves v as is.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
