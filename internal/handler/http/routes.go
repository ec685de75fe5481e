package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.ThrottleBacklog(
		h.serverCfg.MaxConcurrentRequests,
		h.serverCfg.ThrottleBacklog,
		h.serverCfg.BacklogTimeout,
	))
	router.Use(withTimeout(h.serverCfg.RequestTimeout))

	router.Get("/", h.root)
	router.Get("/version", h.getServerVersion)

	router.Route("/api", func(r chi.Router) {
		// login stays reachable without a token; the route disappears
		// entirely when authentication is disabled
		if h.authEnabled {
			r.Post("/auth/login", h.login)
		}

		r.Group(func(r chi.Router) {
			if h.authEnabled {
				r.Use(h.auth)
			}

			r.Get("/", h.keys)
			r.Get("/{key}", h.read)
			r.Post("/{key}", h.upsert)
			r.Put("/{key}", h.update)
			r.Delete("/{key}", h.remove)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
