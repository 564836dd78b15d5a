package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
	"github.com/ocm-tools/ocm-navigator/internal/validation"
)

// ImpactHandler handles impact item endpoints.
type ImpactHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewImpactHandler creates a new ImpactHandler.
func NewImpactHandler(st *store.Store, persister *service.Persister) *ImpactHandler {
	return &ImpactHandler{store: st, persister: persister}
}

// Create adds an impact item to an initiative. The target group reference is
// advisory and not checked.
func (h *ImpactHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(initiativeID); err != nil {
		handleError(w, err)
		return
	}

	var req domain.CreateImpactItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ChangeDescription == "" {
		respondError(w, http.StatusBadRequest, "change_description is required")
		return
	}
	if req.Dimension == "" {
		req.Dimension = "People"
	}
	if req.ImpactLevel == "" {
		req.ImpactLevel = "M"
	}
	if req.Criticality == "" {
		req.Criticality = "M"
	}
	if req.TrainingNeed == "" {
		req.TrainingNeed = "M"
	}
	if req.CommsNeed == "" {
		req.CommsNeed = "M"
	}

	var errs validation.ValidationErrors
	if err := validation.ValidateDimension(req.Dimension); err != nil {
		errs.Add("dimension", req.Dimension, err.Error())
	}
	if err := validation.ValidateLevel(req.ImpactLevel); err != nil {
		errs.Add("impact_level", req.ImpactLevel, err.Error())
	}
	if err := validation.ValidateLevel(req.Criticality); err != nil {
		errs.Add("criticality", req.Criticality, err.Error())
	}
	if err := validation.ValidateLevel(req.TrainingNeed); err != nil {
		errs.Add("training_need", req.TrainingNeed, err.Error())
	}
	if err := validation.ValidateLevel(req.CommsNeed); err != nil {
		errs.Add("comms_need", req.CommsNeed, err.Error())
	}
	if errs.HasErrors() {
		respondValidationErrors(w, errs)
		return
	}

	it := h.store.AddImpactItem(initiativeID, req)
	if it == nil {
		respondError(w, http.StatusBadRequest, "change_description is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, it)
}

// List lists the impact items of an initiative.
func (h *ImpactHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListImpactItems(chi.URLParam(r, "initiative_id")))
}

// Delete removes an impact item.
func (h *ImpactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveImpactItem(chi.URLParam(r, "id"))
	h.persister.TriggerSave()
	respondJSON(w, http.StatusNoContent, nil)
}
