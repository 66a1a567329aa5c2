package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The token from the "Authorization" header is verified via
// [service.AuthService.ParseToken] and the resulting principal is stored in
// the request context with [utils.WithPrincipal]. Requests without a valid
// token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected request without usable bearer token")
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// getTokenFromAuthHeader extracts the token from a header of the form
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
