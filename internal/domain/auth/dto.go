package auth

import (
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/validator"
)

// TokenRequest is the identity-provider exchange: the hosted provider has
// already authenticated the user, this service only mints the access token
// its middleware verifies.
type TokenRequest struct {
	UserID         string  `json:"user_id"`
	OrganizationID *string `json:"organization_id,omitempty"`
}

func (r *TokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}
