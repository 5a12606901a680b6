package http

import (
	"github.com/denteo/clinic-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitAuthRoutes wires the router of the auth server: the public
// authentication endpoints plus the gated user administration surface.
func (h *Handler) InitAuthRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/validate", h.validate)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		r.Route("/api/users", func(r chi.Router) {
			r.With(h.requireRoles(models.RoleAdmin)).Get("/", h.listUsers)
			r.With(h.requireAuth).Get("/{id}", h.getUser)
			r.With(h.requireRoles(models.RoleAdmin)).Put("/{id}", h.updateUser)
			r.With(h.requireRoles(models.RoleAdmin)).Put("/{id}/active", h.setUserActive)
			r.With(h.requireRoles(models.RoleAdmin)).Delete("/{id}", h.deleteUser)
		})
	})

	return router
}

// InitAPIRoutes wires the router of the clinic API server. Every route is
// behind the authentication gate; finer-grained checks (owning patient,
// practitioner roles) live in the handlers.
func (h *Handler) InitAPIRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		r.Use(h.requireAuth)

		r.Route("/api/appointments", func(r chi.Router) {
			r.Post("/", h.createAppointment)
			r.Get("/{id}", h.getAppointment)
			r.Put("/{id}/status", h.updateAppointmentStatus)
		})
		r.Get("/api/patients/{id}/appointments", h.listPatientAppointments)
	})

	return router
}
