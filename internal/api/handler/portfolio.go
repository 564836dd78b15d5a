package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ocm-tools/ocm-navigator/internal/export"
	"github.com/ocm-tools/ocm-navigator/internal/seed"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

// maxImportBytes caps import payloads; the whole document is a few MB at most
// for realistic data volumes.
const maxImportBytes = 32 << 20

// PortfolioHandler handles whole-document endpoints: read, import, export
// and the demo dataset.
type PortfolioHandler struct {
	store     *store.Store
	persister *service.Persister
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(st *store.Store, persister *service.Persister) *PortfolioHandler {
	return &PortfolioHandler{store: st, persister: persister}
}

// Get returns the whole portfolio document.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}

// Import shallow-merges an uploaded JSON document over the current one.
// A malformed payload leaves the document untouched and reports the error.
func (h *PortfolioHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "reading request body")
		return
	}

	next, err := export.MergeImport(h.store.Snapshot(), body)
	if err != nil {
		handleError(w, err)
		return
	}

	h.store.Replace(next)
	h.persister.TriggerSave()
	respondJSON(w, http.StatusOK, next)
}

// ExportJSON streams the pretty-printed document as a download.
func (h *PortfolioHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := export.JSON(h.store.Snapshot())
	if err != nil {
		handleError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="ocm-portfolio-export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportCSV streams one collection as CSV.
func (h *PortfolioHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	data, err := export.CSV(h.store.Snapshot(), kind)
	if err != nil {
		handleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ocm-`+kind+`.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Demo replaces the document with the demo dataset.
func (h *PortfolioHandler) Demo(w http.ResponseWriter, r *http.Request) {
	h.store.Replace(seed.Demo())
	h.persister.TriggerSave()
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}
