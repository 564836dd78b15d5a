package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/report"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
	"github.com/ocm-tools/ocm-navigator/internal/validation"
)

// InitiativeHandler handles initiative endpoints and the derived views
// scoped to one initiative.
type InitiativeHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewInitiativeHandler creates a new InitiativeHandler.
func NewInitiativeHandler(st *store.Store, persister *service.Persister) *InitiativeHandler {
	return &InitiativeHandler{store: st, persister: persister}
}

// Create creates a new initiative.
func (h *InitiativeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInitiativeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Priority == "" {
		req.Priority = "Medium"
	}

	var errs validation.ValidationErrors
	if err := validation.ValidatePriority(req.Priority); err != nil {
		errs.Add("priority", req.Priority, err.Error())
	}
	if errs.HasErrors() {
		respondValidationErrors(w, errs)
		return
	}

	ini := h.store.AddInitiative(req)
	if ini == nil {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, ini)
}

// List lists all initiatives.
func (h *InitiativeHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListInitiatives())
}

// Get gets an initiative by ID.
func (h *InitiativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ini, err := h.store.GetInitiative(chi.URLParam(r, "initiative_id"))
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ini)
}

// Update updates an initiative.
func (h *InitiativeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateInitiativeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Priority != nil {
		if err := validation.ValidatePriority(*req.Priority); err != nil {
			var errs validation.ValidationErrors
			errs.Add("priority", *req.Priority, err.Error())
			respondValidationErrors(w, errs)
			return
		}
	}

	ini, err := h.store.UpdateInitiative(chi.URLParam(r, "initiative_id"), req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusOK, ini)
}

// Delete removes an initiative and cascades to everything scoped to it.
// Removing an unknown id is a no-op, not an error.
func (h *InitiativeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveInitiative(chi.URLParam(r, "initiative_id"))
	h.persister.TriggerSave()
	respondJSON(w, http.StatusNoContent, nil)
}

// overviewResponse bundles the initiative detail counters.
type overviewResponse struct {
	Initiative         domain.Initiative      `json:"initiative"`
	StakeholderCount   int                    `json:"stakeholder_count"`
	TargetGroupCount   int                    `json:"target_group_count"`
	ImpactCount        int                    `json:"impact_count"`
	ActionCount        int                    `json:"action_count"`
	AdkarCoverage      map[string]int         `json:"adkar_coverage"`
	StatusTally        report.StatusTally     `json:"status_tally"`
	CompletionPercent  int                    `json:"completion_percent"`
	ImpactDistribution []report.DimensionStat `json:"impact_distribution"`
}

// Overview returns the counters and coverage for one initiative.
func (h *InitiativeHandler) Overview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "initiative_id")
	ini, err := h.store.GetInitiative(id)
	if err != nil {
		handleError(w, err)
		return
	}

	actions := h.store.ListActions(id)
	impacts := h.store.ListImpactItems(id)
	respondJSON(w, http.StatusOK, overviewResponse{
		Initiative:         *ini,
		StakeholderCount:   len(h.store.ListStakeholders(id)),
		TargetGroupCount:   len(h.store.ListTargetGroups(id)),
		ImpactCount:        len(impacts),
		ActionCount:        len(actions),
		AdkarCoverage:      report.AdkarCoverage(actions, ""),
		StatusTally:        report.Tally(actions),
		CompletionPercent:  report.CompletionPercent(actions),
		ImpactDistribution: report.ImpactDistribution(impacts),
	})
}

// Heatmap returns the per-group, per-dimension severity grid.
func (h *InitiativeHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(id); err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report.Heatmap(h.store.ListTargetGroups(id), h.store.ListImpactItems(id)))
}

// Timeline returns the actions grouped into month buckets.
func (h *InitiativeHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(id); err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report.Timeline(h.store.ListActions(id)))
}

// Report returns the status report summary.
func (h *InitiativeHandler) Report(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "initiative_id")
	ini, err := h.store.GetInitiative(id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report.Summarize(
		*ini,
		h.store.ListStakeholders(id),
		h.store.ListTargetGroups(id),
		h.store.ListImpactItems(id),
		h.store.ListActions(id),
	))
}
