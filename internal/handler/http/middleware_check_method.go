// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to be registered via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed when a path matches a route but the
// method does not. This handler answers 404 Not Found instead, so an
// unsupported method does not reveal that the route exists. When the method
// is in fact registered for the matched pattern, the request is handed back
// to the router's normal pipeline.
//
// Matching compares route patterns against [http.Request.URL.Path] exactly;
// parameterised segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedPath := r.URL.Path
		requestedMethod := r.Method

		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedPath {
				matched = route
				break
			}
		}

		// 404 instead of the default 405 to avoid leaking route existence
		if _, ok := matched.Handlers[requestedMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
