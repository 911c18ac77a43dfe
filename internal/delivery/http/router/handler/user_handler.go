package handler

import (
	"log/slog"
	"net/http"

	"justchoose/internal/delivery/http/middleware"
	"justchoose/internal/delivery/http/response"
	"justchoose/internal/domain/entity"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for sign-in and entitlement handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:     params.UserUC,
		logger: params.Logger,
	}
}

// GoogleLoginRequest carries the ID token from Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// LoginResponse is the issued session.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"` // Seconds.
	User      *entity.User `json:"user"`
	IsAdmin   bool         `json:"isAdmin"`
}

// AccessResponse describes the caller's entitlement.
type AccessResponse struct {
	GoogleAPIAccess bool `json:"googleApiAccess"`
	IsAdmin         bool `json:"isAdmin"`
}

// SetAccessRequest is the body of PATCH /api/admin/users.
type SetAccessRequest struct {
	UserID          string `json:"userId" validate:"required,uuid"`
	GoogleAPIAccess *bool  `json:"googleApiAccess" validate:"required"`
}

// SetAccessResponse echoes the applied entitlement.
type SetAccessResponse struct {
	UserID          uuid.UUID `json:"userId"`
	GoogleAPIAccess bool      `json:"googleApiAccess"`
}

// GoogleLogin handles POST /api/auth/google
func (h *UserHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.uc.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{IDToken: req.IDToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     out.AccessToken,
		ExpiresIn: int64(out.ExpiresIn.Seconds()),
		User:      out.User,
		IsAdmin:   out.IsAdmin,
	}, "Login successful")
}

// GetAccess handles GET /api/user/access
func (h *UserHandler) GetAccess(c echo.Context) error {
	out, err := h.uc.GetAccess(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AccessResponse{
		GoogleAPIAccess: out.GoogleAPIAccess,
		IsAdmin:         out.IsAdmin,
	}, "")
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// SetAccess handles PATCH /api/admin/users
func (h *UserHandler) SetAccess(c echo.Context) error {
	var req SetAccessRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	// Format already checked by the validator.
	userID := uuid.MustParse(req.UserID)

	err := h.uc.SetAccess(c.Request().Context(), middleware.CallerFrom(c), &usecase.SetAccessInput{
		UserID:          userID,
		GoogleAPIAccess: *req.GoogleAPIAccess,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SetAccessResponse{
		UserID:          userID,
		GoogleAPIAccess: *req.GoogleAPIAccess,
	}, "Access updated")
}
