// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func jsonHandler(status int, body any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, body, status)
	})
}

// ─────────────────────────────────────────────
// Response compression
// ─────────────────────────────────────────────

func TestWithGZip_CompressesJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(jsonHandler(http.StatusOK, models.MessageResponse{Message: "hello"})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	assert.JSONEq(t, `{"message":"hello"}`, string(gunzipBytes(t, rec.Body.Bytes())))
}

func TestWithGZip_CompressesErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(jsonHandler(http.StatusConflict, models.ErrorBody{ErrorType: app.ErrorTypeUserExists})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"error_type":"user_exists"}`, string(gunzipBytes(t, rec.Body.Bytes())))
}

func TestWithGZip_PassThrough(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		handler        http.Handler
		wantBody       string
	}{
		{
			name:     "client does not accept gzip",
			handler:  jsonHandler(http.StatusOK, models.MessageResponse{Message: "plain"}),
			wantBody: `{"message":"plain"}`,
		},
		{
			name:           "plain text response",
			acceptEncoding: "gzip",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.Write([]byte("1.0.0"))
			}),
			wantBody: "1.0.0",
		},
		{
			name:           "no content",
			acceptEncoding: "gzip",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNoContent)
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(tt.handler).ServeHTTP(rec, req)

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// Request decompression
// ─────────────────────────────────────────────

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	payload := []byte(`{"email":"ada@example.com","password":"pw"}`)

	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("definitely not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.False(t, called)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.ErrorTypeInvalidData, decodeBody[models.ErrorBody](t, rec).ErrorType)
}

// Gzip in both directions through the full router.
func TestWithGZip_ThroughRouter(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().Refresh(gomock.Any(), "r").Return(models.RefreshResponse{Access: "new"}, nil)

	req := newRequest(http.MethodPost, "/api/token/refresh/", gzipBytes(t, []byte(`{"refresh":"r"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"access":"new"}`, string(gunzipBytes(t, rec.Body.Bytes())))
}
