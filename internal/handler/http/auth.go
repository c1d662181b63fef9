package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftgrid/scheduler-backend-go/internal/domain/auth"
	"github.com/shiftgrid/scheduler-backend-go/internal/handler/http/response"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
}

func NewAuthHandler(jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		jwtService: jwtService,
	}
}

// Token is the exchange endpoint for the hosted identity provider: it
// mints the access token the API middleware verifies. Sign-in itself
// happens at the provider, never here.
func (h *authHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.UserID, req.OrganizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
