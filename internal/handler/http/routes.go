// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Post("/", h.createAccount)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getAccount)
			r.Patch("/", h.updateAccount)
			r.Delete("/", h.deleteAccount)
			r.Get("/profile-records", h.getAccountProfileRecords)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
