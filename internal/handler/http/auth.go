package http

import (
	"net/http"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/metrics"
	"github.com/MKhiriev/yobo-blog/internal/utils"
	"github.com/MKhiriev/yobo-blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		writeMessage(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}
	h.metrics.RecordAuth(metrics.AuthRegister)

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		writeMessage(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.metrics.RecordAuth(metrics.AuthLoginFailure)
		writeError(w, r, "Handler.login", err)
		return
	}
	h.metrics.RecordAuth(metrics.AuthLoginSuccess)

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	principal, err := h.services.AuthService.Me(ctx, userID)
	if err != nil {
		writeError(w, r, "Handler.me", err)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}
