// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.metrics.middleware)
	router.Use(withCORS(h.cfg.AllowedOrigins), h.withRateLimit, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Get("/metrics", h.metrics.handler().ServeHTTP)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/api/diaries", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.saveDiary)
		r.Get("/", h.listDiaries)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getDiary)
			r.Post("/comments", h.addComment)
			r.Post("/reactions", h.react)
			r.Post("/todos", h.addTodo)
			r.Put("/todos/{todo}", h.setTodoCompleted)
			r.Delete("/todos/{todo}", h.deleteTodo)
		})
	})

	return router
}
