package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/auth"
	"github.com/shiftgrid/scheduler-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, invalid, or
// not an access token carrying a user id. It runs after jwtauth.Verifier,
// which parses the token into the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if userID, ok := claims["user_id"].(string); !ok || userID == "" {
				response.HandleError(w, auth.ErrMissingUserID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
