// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with an "Allow" header listing the methods registered for
// the matched route and a JSON body in the API's error shape:
//
//	{"message": "Method \"DELETE\" not allowed."}
//
// The lookup compares each route pattern against the raw request path, so
// only exact patterns are considered. When no pattern matches, the request
// is answered with 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			writeErrorBody(w, http.StatusNotFound, models.ErrorBody{
				ErrorType: app.ErrorTypeNotFound,
				Message:   app.MsgNotFound,
			})
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		sort.Strings(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeErrorBody(w, http.StatusMethodNotAllowed, models.ErrorBody{
			Message: fmt.Sprintf("Method %q not allowed.", r.Method),
		})
	}
}
