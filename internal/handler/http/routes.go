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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/register", h.register)
		r.Post("/token", h.token)
	})

	// routes gated behind a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)

		r.Get("/books", h.listBooks)
		r.Get("/books/{bookID}", h.getBook)
		r.Post("/books", h.createBook)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
