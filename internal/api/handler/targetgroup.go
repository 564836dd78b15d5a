package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
	"github.com/ocm-tools/ocm-navigator/internal/validation"
)

// TargetGroupHandler handles target group endpoints.
type TargetGroupHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewTargetGroupHandler creates a new TargetGroupHandler.
func NewTargetGroupHandler(st *store.Store, persister *service.Persister) *TargetGroupHandler {
	return &TargetGroupHandler{store: st, persister: persister}
}

// Create adds a target group to an initiative.
func (h *TargetGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(initiativeID); err != nil {
		handleError(w, err)
		return
	}

	var req domain.CreateTargetGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := validation.ValidateSize(req.Size); err != nil {
		var errs validation.ValidationErrors
		errs.Add("size", "", err.Error())
		respondValidationErrors(w, errs)
		return
	}

	tg := h.store.AddTargetGroup(initiativeID, req)
	if tg == nil {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, tg)
}

// List lists the target groups of an initiative.
func (h *TargetGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListTargetGroups(chi.URLParam(r, "initiative_id")))
}

// Delete removes a target group. Impacts and actions referencing it keep
// dangling references.
func (h *TargetGroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveTargetGroup(chi.URLParam(r, "id"))
	h.persister.TriggerSave()
	respondJSON(w, http.StatusNoContent, nil)
}
