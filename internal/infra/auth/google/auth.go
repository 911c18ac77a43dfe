package google

import (
	"context"
	"log/slog"

	"justchoose/config"
	"justchoose/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthService verifies Google Sign-In ID tokens against Google's published keys.
type AuthService struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google ID token verifier
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthService{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService
func (s *AuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	user := &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}

	if user.Email == "" || !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.Debug("Google ID token verified", slog.String("email", user.Email))

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
