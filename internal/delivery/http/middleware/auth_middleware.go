package middleware

import (
	"strings"

	"justchoose/config"
	"justchoose/internal/domain/constants"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for session token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	admins   *config.AdminConfig
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, admins: cfg.Admin}
}

// Authenticate rejects requests without a valid session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return domainerrors.ErrUnauthorized
		}
		if err := m.identify(c); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate identifies the caller when a token is sent and lets anonymous requests through.
// A token that is present but invalid is still rejected so clients learn their session expired.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}
		if err := m.identify(c); err != nil {
			return err
		}

		return next(c)
	}
}

// RequireAdmin checks the caller against the administrator allow-list.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := CallerFrom(c)
		if caller == nil {
			return domainerrors.ErrUnauthorized
		}
		if !m.admins.IsAdmin(caller.Email) {
			return domainerrors.ErrForbidden.WithDetails("administrator access required")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) identify(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || tokenString == "" {
		return domainerrors.ErrInvalidToken.WithDetails("authorization header must be a Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.UserID == uuid.Nil {
		return domainerrors.ErrInvalidToken
	}

	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyEmail, claims.Email)

	return nil
}

// CallerFrom returns the identity set by the auth middleware, or nil for anonymous requests.
func CallerFrom(c echo.Context) *entity.Caller {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return nil
	}
	email, _ := c.Get(constants.ContextKeyEmail).(string)

	return &entity.Caller{UserID: userID, Email: email}
}
