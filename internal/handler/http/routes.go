package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the resource API router.
//
// The root path serves the profile document without auth. Every other path
// names a resource: GET, HEAD and OPTIONS pass the read gate, PUT and DELETE
// pass the write gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.getProfile)
		r.Head("/", h.getProfile)
		r.Options("/", h.options)
	})

	// read routes
	router.Group(func(r chi.Router) {
		r.Use(withResourceID)
		r.Use(h.withAuth(h.readMode))

		r.Get("/*", h.getResource)
		r.Head("/*", h.getResource)
		r.Options("/*", h.options)
	})

	// write routes
	router.Group(func(r chi.Router) {
		r.Use(withResourceID)
		r.Use(h.withAuth(h.writeMode))
		r.Use(h.withBodyLimit)

		r.Put("/*", h.putResource)
		r.Delete("/*", h.deleteResource)
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}
