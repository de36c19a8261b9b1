package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

// getServerVersion answers with the bare version string, or with
// {"version": ...} when the caller accepts only JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	w.Header().Set("Cache-Control", "no-store")

	if accept := r.Header.Get("Accept"); strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/plain") {
		utils.WriteJSON(w, versionResponse{Version: version}, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, version)
}
