package auth

import (
	"context"
)

// AuthService defines authentication business logic. Employees sign in with
// their employee code and PIN; sessions are JWT access tokens refreshed via
// an HTTP-only cookie.
type AuthService interface {
	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
