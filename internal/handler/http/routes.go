// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// EndpointName is the path segment the user-config endpoint is served under.
const EndpointName = "userConfig"

// Init builds the router of the standalone listener. Every path starting
// with "/userConfig" is the endpoint, including "/userConfig/abc" and
// "/userConfigX"; anything else is a plain-text 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.common()...)

	router.NotFound(notFound)
	// chi answers methods it does not know (FOO, PROPFIND) here, before
	// any route is matched
	router.MethodNotAllowed(h.unknownMethod)

	router.Handle("/"+EndpointName+"*", h.userConfigEndpoint())

	return router
}

// Function returns the handler for managed-function platforms, which bind
// one URL to one handler: every path is the endpoint.
func (h *Handler) Function() http.Handler {
	return chi.Chain(h.common()...).Handler(h.userConfigEndpoint())
}

// userConfigEndpoint authenticates, resolves the role and dispatches by
// method. Unsupported methods still pass auth and role resolution before
// the 405.
func (h *Handler) userConfigEndpoint() http.Handler {
	return chi.Chain(h.endpoint()...).HandlerFunc(h.dispatchUserConfig)
}

func (h *Handler) unknownMethod(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/"+EndpointName) {
		notFound(w, r)
		return
	}

	h.userConfigEndpoint().ServeHTTP(w, r)
}

// common is the middleware every response passes through.
func (h *Handler) common() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		middleware.Compress(5),
		withCORS,
	}
}

// endpoint is the middleware in front of the CRUD handlers.
func (h *Handler) endpoint() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		h.auth,
		h.withRole,
	}
}
