package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

// ProposalHandler handles change proposal endpoints.
type ProposalHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(st *store.Store, persister *service.Persister) *ProposalHandler {
	return &ProposalHandler{store: st, persister: persister}
}

// Create creates a pending change proposal for an initiative.
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(initiativeID); err != nil {
		handleError(w, err)
		return
	}

	var req domain.CreateProposalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Reason == "" {
		respondError(w, http.StatusBadRequest, "reason is required")
		return
	}

	p := h.store.AddProposal(initiativeID, req)
	if p == nil {
		respondError(w, http.StatusBadRequest, "reason is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, p)
}

// List lists the change proposals of an initiative.
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListProposals(chi.URLParam(r, "initiative_id")))
}

// Apply marks a pending proposal applied. Applied and rejected are terminal,
// so re-deciding a proposal yields 409.
func (h *ProposalHandler) Apply(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.ApplyProposal(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err)
		return
	}
	h.persister.TriggerSave()
	respondJSON(w, http.StatusOK, p)
}

// Reject marks a pending proposal rejected.
func (h *ProposalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.RejectProposal(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err)
		return
	}
	h.persister.TriggerSave()
	respondJSON(w, http.StatusOK, p)
}
