package service

import "context"

// OAuthUser represents user information from a verified Google ID token
type OAuthUser struct {
	Subject       string // Google's 'sub' claim
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService verifies ID tokens sent by the client after Google Sign-In
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
