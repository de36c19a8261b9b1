// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMethodTestRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/api/profile/", ok)
	router.Put("/api/update-profile/", ok)
	router.Patch("/api/update-profile/", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
		wantMsg    string
	}{
		{
			name:       "allowed method passes",
			method:     http.MethodGet,
			path:       "/api/profile/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "single allowed method",
			method:     http.MethodPost,
			path:       "/api/profile/",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "GET",
			wantMsg:    `Method "POST" not allowed.`,
		},
		{
			name:       "several allowed methods are sorted",
			method:     http.MethodDelete,
			path:       "/api/update-profile/",
			wantStatus: http.StatusMethodNotAllowed,
			wantAllow:  "PATCH, PUT",
			wantMsg:    `Method "DELETE" not allowed.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMethodTestRouter()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeBody[models.ErrorBody](t, rec).Message)
			}
		})
	}
}

func TestCheckHTTPMethod_UnknownPathIs404(t *testing.T) {
	router := newMethodTestRouter()
	handler := CheckHTTPMethod(router)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/unknown/", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Allow"))
	assert.Equal(t, app.ErrorTypeNotFound, decodeBody[models.ErrorBody](t, rec).ErrorType)
}
