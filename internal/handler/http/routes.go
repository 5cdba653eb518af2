package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET  /api/version/             no auth
//	GET  /vault-tasks/user/{id}    application capability, owner only
//	POST /vault-tasks/user/{id}    application capability, owner only, integrity check
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireCapability(models.CapabilityApplication), h.ownerOnly)

		r.Get("/vault-tasks/user/{id}", h.getVaultTasks)
		r.With(h.tasksHashing).Post("/vault-tasks/user/{id}", h.updateVaultTasks)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// userIDParam is the name of the path parameter holding the vault owner.
const userIDParam = "id"

func pathUserID(r *http.Request) string {
	return chi.URLParam(r, userIDParam)
}
