package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harborlight/intake-server/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		// form submission and read endpoints are publicly reachable
		r.Route("/referrals", func(r chi.Router) {
			r.Post("/", h.submitReferral)
			r.Get("/", h.listReferrals)
			r.Get("/master-data/{field}", h.masterData("referrals"))
			r.Get("/{id}", h.getReferral)
		})
		r.Route("/encounters", func(r chi.Router) {
			r.Post("/", h.submitEncounter)
			r.Get("/", h.listEncounters)
			r.Get("/master-data/{field}", h.masterData("encounters"))
			r.Get("/{id}", h.getEncounter)
		})
		r.Route("/snap-assessments", func(r chi.Router) {
			r.Post("/", h.submitSnapAssessment)
			r.Get("/", h.listSnapAssessments)
			r.Get("/master-data/{field}", h.masterData("snap-assessments"))
			r.Get("/{id}", h.getSnapAssessment)
		})
		r.Route("/discharge-summaries", func(r chi.Router) {
			r.Post("/", h.submitDischargeSummary)
			r.Get("/", h.listDischargeSummaries)
			r.Get("/master-data/{field}", h.masterData("discharge-summaries"))
			r.Get("/{id}", h.getDischargeSummary)
		})
		r.Route("/wrap-plans", func(r chi.Router) {
			r.Post("/", h.submitWrapPlan)
			r.Get("/", h.listWrapPlans)
			r.Get("/master-data/{field}", h.masterData("wrap-plans"))
			r.Get("/{id}", h.getWrapPlan)
		})
		r.Route("/handbook-acknowledgements", func(r chi.Router) {
			r.Post("/", h.submitHandbookAcknowledgement)
			r.Get("/", h.listHandbookAcknowledgements)
			r.Get("/master-data/{field}", h.masterData("handbook-acknowledgements"))
			r.Get("/{id}", h.getHandbookAcknowledgement)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/verify", h.verify)

				r.Group(func(r chi.Router) {
					r.Use(h.requirePermission(func(p models.Permissions) bool { return p.CanManageUsers }))
					r.Get("/users", h.listUsers)
					r.Post("/users", h.createUser)
					r.Patch("/users/{id}", h.updateUser)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
