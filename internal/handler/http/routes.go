package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(api chi.Router) {
		// routes without authentication
		api.Post("/auth/register", h.register)
		api.Post("/auth/login", h.login)
		api.Post("/auth/logout", h.logout)
		api.Get("/auth/check", h.authCheck)

		// routes behind the session gate
		api.Group(func(r chi.Router) {
			r.Use(h.session)

			r.Post("/auth/logout-all", h.logoutAll)

			r.Get("/profile", h.profile)
			r.Put("/profile/theme", h.updateTheme)

			r.Post("/measurements", h.createMeasurement)
			r.Get("/measurements", h.listMeasurements)
			r.Get("/measurements/{id}", h.getMeasurement)
			r.Delete("/measurements/{id}", h.deleteMeasurement)

			r.Post("/water", h.createWaterEntry)
			r.Get("/water", h.listWaterEntries)
			r.Get("/water/total", h.waterTotal)
			r.Delete("/water/{id}", h.deleteWaterEntry)

			r.Post("/fasts", h.startFast)
			r.Get("/fasts/current", h.currentFast)
			r.Post("/fasts/{id}/finish", h.finishFast)
			r.Get("/fasts", h.listFasts)
			r.Delete("/fasts/{id}", h.deleteFast)

			// back-office routes additionally behind the admin gate
			r.Route("/admin", func(ar chi.Router) {
				ar.Use(h.admin)

				ar.Get("/users", h.adminListUsers)
				ar.Post("/users", h.adminCreateUser)
				ar.Patch("/users/{id}/role", h.adminUpdateUserRole)
				ar.Patch("/users/{id}/password", h.adminResetUserPassword)
				ar.Delete("/users/{id}", h.adminDeleteUser)
			})
		})
	})

	return router
}
