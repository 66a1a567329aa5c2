// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/service"
	"github.com/MKhiriev/yobo-blog/internal/utils"
	"github.com/MKhiriev/yobo-blog/models"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

const invalidJSONMessage = "invalid JSON body"

// errorStatusMap maps service error kinds to HTTP status codes. Anything
// else is a 500.
var errorStatusMap = map[error]int{
	service.ErrValidation:   http.StatusBadRequest,
	service.ErrConflict:     http.StatusConflict,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrForbidden:    http.StatusForbidden,
	service.ErrNotFound:     http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err. Validation errors list every violation; other
// client errors carry the service message; server errors hide details.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Str("func", funcName).Msg("request rejected by validation")
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: validationErr.Violations}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
		writeMessage(w, status, http.StatusText(status))
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")

	message := http.StatusText(status)
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	writeMessage(w, status, message)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
