package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ocm-tools/ocm-navigator/internal/api/handler"
	"github.com/ocm-tools/ocm-navigator/internal/api/middleware"
	"github.com/ocm-tools/ocm-navigator/internal/service"
	"github.com/ocm-tools/ocm-navigator/internal/store"
)

// NewRouter builds the HTTP routing tree for the API.
func NewRouter(st *store.Store, persister *service.Persister) http.Handler {
	portfolio := handler.NewPortfolioHandler(st, persister)
	initiatives := handler.NewInitiativeHandler(st, persister)
	stakeholders := handler.NewStakeholderHandler(st, persister)
	targetGroups := handler.NewTargetGroupHandler(st, persister)
	impacts := handler.NewImpactHandler(st, persister)
	actions := handler.NewActionHandler(st, persister)
	artifacts := handler.NewArtifactHandler(st, persister)
	proposals := handler.NewProposalHandler(st, persister)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.ContentType)

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", portfolio.Get)
			r.Post("/import", portfolio.Import)
			r.Get("/export", portfolio.ExportJSON)
			r.Get("/export/{kind}", portfolio.ExportCSV)
			r.Post("/demo", portfolio.Demo)
		})

		r.Route("/initiatives", func(r chi.Router) {
			r.Post("/", initiatives.Create)
			r.Get("/", initiatives.List)

			r.Route("/{initiative_id}", func(r chi.Router) {
				r.Get("/", initiatives.Get)
				r.Patch("/", initiatives.Update)
				r.Delete("/", initiatives.Delete)

				r.Get("/overview", initiatives.Overview)
				r.Get("/heatmap", initiatives.Heatmap)
				r.Get("/timeline", initiatives.Timeline)
				r.Get("/report", initiatives.Report)

				r.Route("/stakeholders", func(r chi.Router) {
					r.Post("/", stakeholders.Create)
					r.Get("/", stakeholders.List)
				})
				r.Route("/target-groups", func(r chi.Router) {
					r.Post("/", targetGroups.Create)
					r.Get("/", targetGroups.List)
				})
				r.Route("/impacts", func(r chi.Router) {
					r.Post("/", impacts.Create)
					r.Get("/", impacts.List)
				})
				r.Route("/actions", func(r chi.Router) {
					r.Post("/", actions.Create)
					r.Get("/", actions.List)
				})
				r.Route("/artifacts", func(r chi.Router) {
					r.Post("/", artifacts.Create)
					r.Get("/", artifacts.List)
				})
				r.Route("/proposals", func(r chi.Router) {
					r.Post("/", proposals.Create)
					r.Get("/", proposals.List)
				})
			})
		})

		// Child entities have globally unique ids, so deletes and status
		// transitions address them directly.
		r.Delete("/stakeholders/{id}", stakeholders.Delete)
		r.Delete("/target-groups/{id}", targetGroups.Delete)
		r.Delete("/impacts/{id}", impacts.Delete)
		r.Delete("/actions/{id}", actions.Delete)
		r.Post("/actions/{id}/cycle-status", actions.CycleStatus)
		r.Delete("/artifacts/{id}", artifacts.Delete)
		r.Post("/proposals/{id}/apply", proposals.Apply)
		r.Post("/proposals/{id}/reject", proposals.Reject)
	})

	return r
}
