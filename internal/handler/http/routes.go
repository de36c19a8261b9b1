package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const (
	apiPrefix = "/api"
	mt5Prefix = apiPrefix + "/mt5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get(apiPrefix+"/version/", h.getServerVersion)
		r.Post(apiPrefix+"/register/", h.register)
		r.Post(apiPrefix+"/login/", h.login)
		r.Post(apiPrefix+"/token/refresh/", h.refreshToken)
		r.Post(apiPrefix+"/forgot-password/", h.forgotPassword)
		r.Post(apiPrefix+"/reset-password/", h.resetPassword)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Post(apiPrefix+"/logout/", h.logout)
		r.Get(apiPrefix+"/profile/", h.getProfile)
		r.Put(apiPrefix+"/update-profile/", h.updateProfile)
		r.Patch(apiPrefix+"/update-profile/", h.updateProfile)
		r.Post(apiPrefix+"/change-password/", h.changePassword)
		r.Get(apiPrefix+"/dashboard/", h.getDashboard)
		r.Get(apiPrefix+"/subscriptions/", h.getSubscriptions)

		r.Get(mt5Prefix+"/account/", h.getMT5Account)
		r.Post(mt5Prefix+"/account/", h.saveMT5Account)
		r.Post(mt5Prefix+"/test-connection/", h.testMT5Connection)
		r.Post(mt5Prefix+"/refresh-status/", h.refreshMT5Status)
		r.Delete(mt5Prefix+"/delete-account/", h.deleteMT5Account)
		r.Get(mt5Prefix+"/algorithms/", h.listAlgorithmExecutions)
		r.Post(mt5Prefix+"/start-algorithm/", h.startAlgorithm)
		r.Post(mt5Prefix+"/stop-algorithm/"+executionIDPattern+"/", h.stopAlgorithm)
		r.Post(mt5Prefix+"/pause-algorithm/"+executionIDPattern+"/", h.pauseAlgorithm)
		r.Post(mt5Prefix+"/resume-algorithm/"+executionIDPattern+"/", h.resumeAlgorithm)
		r.Get(mt5Prefix+"/account-statistics/", h.getAccountStatistics)
		r.Get(mt5Prefix+"/manual-statistics/", h.getManualStatistics)
	})

	if h.serveMetrics {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorBody(w, http.StatusNotFound, models.ErrorBody{ErrorType: app.ErrorTypeNotFound, Message: app.MsgNotFound})
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
