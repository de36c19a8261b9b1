package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const (
	executionIDParam   = "executionID"
	executionIDPattern = "{" + executionIDParam + ":[0-9]+}"
)

func (h *Handler) getMT5Account(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.MT5Service.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) saveMT5Account(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var credentials models.MT5Credentials
	if err = decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.MT5Service.SaveAccount(r.Context(), id, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

// testMT5Connection answers 400 with the result body when the terminal
// refuses the login.
func (h *Handler) testMT5Connection(w http.ResponseWriter, r *http.Request) {
	var credentials models.MT5Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.MT5Service.TestConnection(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.OK() {
		status = http.StatusBadRequest
	}
	utils.WriteJSON(w, result, status)
}

func (h *Handler) refreshMT5Status(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.MT5Service.RefreshStatus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteMT5Account(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MT5Service.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgMT5AccountDeleted}, http.StatusOK)
}

func (h *Handler) listAlgorithmExecutions(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	executions, err := h.services.MT5Service.ListExecutions(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, executions, http.StatusOK)
}

func (h *Handler) startAlgorithm(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StartAlgorithmRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.MT5Service.StartAlgorithm(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) stopAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.controlAlgorithm(w, r, h.services.MT5Service.StopAlgorithm)
}

func (h *Handler) pauseAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.controlAlgorithm(w, r, h.services.MT5Service.PauseAlgorithm)
}

func (h *Handler) resumeAlgorithm(w http.ResponseWriter, r *http.Request) {
	h.controlAlgorithm(w, r, h.services.MT5Service.ResumeAlgorithm)
}

type executionControl func(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error)

func (h *Handler) controlAlgorithm(w http.ResponseWriter, r *http.Request, control executionControl) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	executionID, err := strconv.ParseInt(chi.URLParam(r, executionIDParam), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", store.ErrExecutionNotFound, err))
		return
	}

	resp, err := control(r.Context(), id, executionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getAccountStatistics(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.services.MT5Service.AccountStatistics(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) getManualStatistics(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.services.MT5Service.ManualStatistics(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
