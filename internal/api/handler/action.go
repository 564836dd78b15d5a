package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
	"github.com/ocm-tools/ocm-navigator/internal/validation"
)

// ActionHandler handles action endpoints.
type ActionHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(st *store.Store, persister *service.Persister) *ActionHandler {
	return &ActionHandler{store: st, persister: persister}
}

// Create adds an action to an initiative. Target group and owner references
// are advisory and not checked.
func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(initiativeID); err != nil {
		handleError(w, err)
		return
	}

	var req domain.CreateActionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Type == "" {
		req.Type = "Comms"
	}

	var errs validation.ValidationErrors
	if err := validation.ValidateActionType(req.Type); err != nil {
		errs.Add("type", req.Type, err.Error())
	}
	if err := validation.ValidateActionStatus(req.Status); err != nil {
		errs.Add("status", req.Status, err.Error())
	}
	if err := validation.ValidateAdkarTags(req.AdkarTags); err != nil {
		errs.Add("adkar_tags", "", err.Error())
	}
	if err := validation.ValidateDueDate(req.DueDate); err != nil {
		errs.Add("due_date", req.DueDate, err.Error())
	}
	if errs.HasErrors() {
		respondValidationErrors(w, errs)
		return
	}

	a := h.store.AddAction(initiativeID, req)
	if a == nil {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, a)
}

// List lists the actions of an initiative.
func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListActions(chi.URLParam(r, "initiative_id")))
}

// Delete removes an action.
func (h *ActionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveAction(chi.URLParam(r, "id"))
	h.persister.TriggerSave()
	respondJSON(w, http.StatusNoContent, nil)
}

// CycleStatus advances an action's status one step in the cycle
// planned → in_progress → done → planned.
func (h *ActionHandler) CycleStatus(w http.ResponseWriter, r *http.Request) {
	a := h.store.CycleActionStatus(chi.URLParam(r, "id"))
	if a == nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	h.persister.TriggerSave()
	respondJSON(w, http.StatusOK, a)
}
