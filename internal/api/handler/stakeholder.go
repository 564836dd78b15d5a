package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
	"github.com/ocm-tools/ocm-navigator/internal/validation"
)

// StakeholderHandler handles stakeholder endpoints.
type StakeholderHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewStakeholderHandler creates a new StakeholderHandler.
func NewStakeholderHandler(st *store.Store, persister *service.Persister) *StakeholderHandler {
	return &StakeholderHandler{store: st, persister: persister}
}

// Create adds a stakeholder to an initiative.
func (h *StakeholderHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(initiativeID); err != nil {
		handleError(w, err)
		return
	}

	var req domain.CreateStakeholderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Role == "" {
		req.Role = "BR"
	}
	if req.Influence == "" {
		req.Influence = "M"
	}
	if req.Interest == "" {
		req.Interest = "M"
	}
	if req.Readiness == "" {
		req.Readiness = "neutral"
	}

	var errs validation.ValidationErrors
	if err := validation.ValidateRole(req.Role); err != nil {
		errs.Add("role", req.Role, err.Error())
	}
	if err := validation.ValidateLevel(req.Influence); err != nil {
		errs.Add("influence", req.Influence, err.Error())
	}
	if err := validation.ValidateLevel(req.Interest); err != nil {
		errs.Add("interest", req.Interest, err.Error())
	}
	if err := validation.ValidateReadiness(req.Readiness); err != nil {
		errs.Add("readiness", req.Readiness, err.Error())
	}
	if errs.HasErrors() {
		respondValidationErrors(w, errs)
		return
	}

	sh := h.store.AddStakeholder(initiativeID, req)
	if sh == nil {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, sh)
}

// List lists the stakeholders of an initiative.
func (h *StakeholderHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListStakeholders(chi.URLParam(r, "initiative_id")))
}

// Delete removes a stakeholder. Actions it owns keep a dangling reference.
func (h *StakeholderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveStakeholder(chi.URLParam(r, "id"))
	h.persister.TriggerSave()
	respondJSON(w, http.StatusNoContent, nil)
}
