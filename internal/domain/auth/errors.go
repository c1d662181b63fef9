package auth

import "errors"

var (
	ErrInvalidToken  = errors.New("invalid or missing token")
	ErrTokenExpired  = errors.New("token expired")
	ErrMissingUserID = errors.New("user_id claim is missing")
)
