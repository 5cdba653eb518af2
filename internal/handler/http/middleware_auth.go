package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-tasks/internal/app"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/utils"
)

// auth verifies the bearer token and stores it in the request context
// (see [utils.WithToken]). Every failure is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}

// requireCapability rejects tokens that do not grant capability with 403.
// It must run after auth.
func (h *Handler) requireCapability(capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.GetTokenFromContext(r.Context())
			if !ok || !token.HasCapability(capability) {
				logger.FromRequest(r).Warn().
					Str("func", "*Handler.requireCapability").
					Str("capability", capability).
					Msg("token lacks capability")
				http.Error(w, app.MsgMissingCapability, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ownerOnly lets a request through only when the {id} path parameter equals
// the token subject.
func (h *Handler) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		pathID := pathUserID(r)

		if !ok || pathID != userID {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.ownerOnly").
				Str("path_user_id", pathID).
				Str("token_user_id", userID).
				Msg("access to another user's vault tasks")
			http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
