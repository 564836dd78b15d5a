package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/domain"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

// ArtifactHandler handles artifact endpoints.
type ArtifactHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewArtifactHandler creates a new ArtifactHandler.
func NewArtifactHandler(st *store.Store, persister *service.Persister) *ArtifactHandler {
	return &ArtifactHandler{store: st, persister: persister}
}

// Create adds an artifact to an initiative.
func (h *ArtifactHandler) Create(w http.ResponseWriter, r *http.Request) {
	initiativeID := chi.URLParam(r, "initiative_id")
	if _, err := h.store.GetInitiative(initiativeID); err != nil {
		handleError(w, err)
		return
	}

	var req domain.CreateArtifactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	ar := h.store.AddArtifact(initiativeID, req)
	if ar == nil {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.persister.TriggerSave()
	respondJSON(w, http.StatusCreated, ar)
}

// List lists the artifacts of an initiative.
func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListArtifacts(chi.URLParam(r, "initiative_id")))
}

// Delete removes an artifact. Actions keep dangling links to it.
func (h *ArtifactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveArtifact(chi.URLParam(r, "id"))
	h.persister.TriggerSave()
	respondJSON(w, http.StatusNoContent, nil)
}
