// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler.
//
// When the request path equals a static route pattern that does not handle
// the method, the response is 404 Not Found instead of chi's 405, so
// unsupported methods do not reveal which paths exist. Parameterised
// patterns never match the raw path and always get 404 here.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			writeMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}

		router.ServeHTTP(w, r)
	}
}
