package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mesa-budget/internal/core/domain"
	"mesa-budget/internal/core/port"
)

type startRunResponse struct {
	RunID uuid.UUID `json:"run_id"`
}

// handleStartRun starts a run in the background. The body is decoded into a
// port.RunRequest. It answers 202 with the run id, 400 for invalid
// parameters and 409 while another run is in progress.
func (h *Handler) handleStartRun(w http.ResponseWriter, r *http.Request) {
	var req port.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	id, err := h.svc.Start(r.Context(), req)
	switch {
	case errors.Is(err, port.ErrRunInProgress):
		h.writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, port.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidThresholds):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("start run error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.logger.Info("run accepted", slog.String("run_id", id.String()), slog.String("policy", string(req.Policy)))
	h.writeJSON(w, http.StatusAccepted, startRunResponse{RunID: id})
}

// handleCurrentRun returns the state and log lines of the latest run.
func (h *Handler) handleCurrentRun(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Current())
}

type runRecordResponse struct {
	ID             uuid.UUID       `json:"id"`
	Policy         domain.Policy   `json:"policy"`
	State          domain.RunState `json:"state"`
	DryRun         bool            `json:"dry_run"`
	StartedAt      string          `json:"started_at"`
	FinishedAt     string          `json:"finished_at"`
	UnitsEvaluated int             `json:"units_evaluated"`
	ChangesApplied int             `json:"changes_applied"`
	ChangesFailed  int             `json:"changes_failed"`
	AmountMoved    string          `json:"amount_moved"`
	TotalBudget    string          `json:"total_budget"`
	Summary        string          `json:"summary"`
	Error          string          `json:"error,omitempty"`
}

// handleRunHistory lists the latest runs, newest first. An optional `limit`
// query parameter bounds the result; invalid values produce HTTP 400.
func (h *Handler) handleRunHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	recs, err := h.svc.History(r.Context(), limit)
	if err != nil {
		h.logger.Error("run history error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]runRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, runRecordResponse{
			ID:             rec.ID,
			Policy:         rec.Policy,
			State:          rec.State,
			DryRun:         rec.DryRun,
			StartedAt:      rec.StartedAt.UTC().Format(time.RFC3339),
			FinishedAt:     rec.FinishedAt.UTC().Format(time.RFC3339),
			UnitsEvaluated: rec.UnitsEvaluated,
			ChangesApplied: rec.ChangesApplied,
			ChangesFailed:  rec.ChangesFailed,
			AmountMoved:    rec.AmountMoved.StringFixed(2),
			TotalBudget:    rec.TotalBudget.StringFixed(2),
			Summary:        rec.Summary,
			Error:          rec.Error,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleAccounts describes the configured ad accounts.
func (h *Handler) handleAccounts(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Accounts())
}
