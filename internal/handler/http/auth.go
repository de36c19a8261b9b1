package http

import (
	"errors"
	"net/http"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// Token refresh outcomes.
const (
	refreshSucceeded = "success"
	refreshRejected  = "rejected"
	refreshFailed    = "error"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.RegisterCredentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.LoginCredentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", resp.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

// logout revokes the refresh token from the body. A token that cannot be
// parsed or belongs to someone else is a plain 400: a 401 here would make
// the client renew its session just to log out.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.RefreshRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err = h.services.AuthService.Logout(r.Context(), id, req.Refresh)
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		logger.FromRequest(r).Debug().Err(err).Msg("logout with invalid refresh token")
		writeErrorBody(w, http.StatusBadRequest, models.ErrorBody{Message: app.MsgInvalidToken})
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLogoutSuccessful}, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		status, _ := errorResponse(err)
		outcome := refreshFailed
		if status < http.StatusInternalServerError {
			outcome = refreshRejected
		}
		h.metrics.TokenRefreshes.WithLabelValues(outcome).Inc()
		writeError(w, r, err)
		return
	}

	h.metrics.TokenRefreshes.WithLabelValues(refreshSucceeded).Inc()
	utils.WriteJSON(w, resp, http.StatusOK)
}

