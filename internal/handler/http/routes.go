package http

import (
	"github.com/MKhiriev/yobo-blog/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Middleware)

	// promhttp negotiates its own compression
	router.Get("/metrics", metrics.Handler(h.gatherer).ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/auth/me", h.me)

			r.Get("/api/blog", h.listPosts)
			r.Post("/api/blog", h.createPost)
			r.Get("/api/blog/slug/{slug}", h.getPostBySlug)
			r.Get("/api/blog/{id}", h.getPostByID)
			r.Put("/api/blog/{id}", h.updatePost)
			r.Delete("/api/blog/{id}", h.deletePost)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
