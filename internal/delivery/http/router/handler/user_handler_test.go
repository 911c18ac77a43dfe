package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	mockUsecase "justchoose/internal/mocks/usecase"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: slog.Default()}), userUC
}

func TestUserHandler_GoogleLogin(t *testing.T) {
	t.Run("issues a session token", func(t *testing.T) {
		h, userUC := newUserHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/auth/google", `{"idToken":"google-id-token"}`)
		user := &entity.User{ID: uuid.New(), Email: "diner@example.com", Name: "Dana Diner", GoogleSubject: "google-sub-1"}

		userUC.EXPECT().
			GoogleLogin(mock.Anything, &usecase.GoogleLoginInput{IDToken: "google-id-token"}).
			Return(&usecase.LoginOutput{
				AccessToken: "session-jwt",
				ExpiresIn:   24 * time.Hour,
				User:        user,
				IsAdmin:     true,
			}, nil)

		require.NoError(t, h.GoogleLogin(c))

		var got LoginResponse
		envelope := decodeData(t, rec, &got)
		assert.Equal(t, "Login successful", envelope.Message)
		assert.Equal(t, "session-jwt", got.Token)
		assert.Equal(t, int64(86400), got.ExpiresIn)
		assert.True(t, got.IsAdmin)
		require.NotNil(t, got.User)
		assert.Equal(t, user.ID, got.User.ID)
		assert.NotContains(t, rec.Body.String(), "google-sub-1")
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		h, _ := newUserHandler(t)
		c, _ := newTestContext(http.MethodPost, "/api/auth/google", `{}`)

		assert.ErrorIs(t, h.GoogleLogin(c), domainerrors.ErrValidationFailed)
	})

	t.Run("invalid google token passes through", func(t *testing.T) {
		h, userUC := newUserHandler(t)
		c, _ := newTestContext(http.MethodPost, "/api/auth/google", `{"idToken":"forged"}`)

		userUC.EXPECT().GoogleLogin(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOAuthTokenInvalid)

		assert.ErrorIs(t, h.GoogleLogin(c), domainerrors.ErrOAuthTokenInvalid)
	})
}

func TestUserHandler_GetAccess(t *testing.T) {
	h, userUC := newUserHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/user/access", "")
	caller := &entity.Caller{UserID: uuid.New(), Email: "diner@example.com"}
	signIn(c, caller)

	userUC.EXPECT().GetAccess(mock.Anything, caller).
		Return(&usecase.AccessOutput{GoogleAPIAccess: true}, nil)

	require.NoError(t, h.GetAccess(c))

	var got AccessResponse
	decodeData(t, rec, &got)
	assert.Equal(t, AccessResponse{GoogleAPIAccess: true, IsAdmin: false}, got)
}

func TestUserHandler_ListUsers(t *testing.T) {
	h, userUC := newUserHandler(t)
	c, rec := newTestContext(http.MethodGet, "/api/admin/users", "")
	admin := &entity.Caller{UserID: uuid.New(), Email: "admin@example.com"}
	signIn(c, admin)

	userUC.EXPECT().ListUsers(mock.Anything, admin).Return([]*entity.User{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com", GoogleAPIAccess: true},
	}, nil)

	require.NoError(t, h.ListUsers(c))

	var got []entity.User
	decodeData(t, rec, &got)
	require.Len(t, got, 2)
	assert.True(t, got[1].GoogleAPIAccess)
}

func TestUserHandler_SetAccess(t *testing.T) {
	admin := &entity.Caller{UserID: uuid.New(), Email: "admin@example.com"}
	target := uuid.New()

	t.Run("grants access", func(t *testing.T) {
		h, userUC := newUserHandler(t)
		c, rec := newTestContext(http.MethodPatch, "/api/admin/users",
			`{"userId":"`+target.String()+`","googleApiAccess":true}`)
		signIn(c, admin)

		userUC.EXPECT().
			SetAccess(mock.Anything, admin, &usecase.SetAccessInput{UserID: target, GoogleAPIAccess: true}).
			Return(nil)

		require.NoError(t, h.SetAccess(c))

		var got SetAccessResponse
		decodeData(t, rec, &got)
		assert.Equal(t, SetAccessResponse{UserID: target, GoogleAPIAccess: true}, got)
	})

	t.Run("explicit false revokes access", func(t *testing.T) {
		h, userUC := newUserHandler(t)
		c, _ := newTestContext(http.MethodPatch, "/api/admin/users",
			`{"userId":"`+target.String()+`","googleApiAccess":false}`)
		signIn(c, admin)

		userUC.EXPECT().
			SetAccess(mock.Anything, admin, &usecase.SetAccessInput{UserID: target, GoogleAPIAccess: false}).
			Return(nil)

		require.NoError(t, h.SetAccess(c))
	})

	testCases := []struct {
		name string
		body string
		want string
	}{
		{name: "missing flag", body: `{"userId":"` + target.String() + `"}`, want: "googleApiAccess is required"},
		{name: "malformed user id", body: `{"userId":"42","googleApiAccess":true}`, want: "userId must be a UUID"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newUserHandler(t)
			c, _ := newTestContext(http.MethodPatch, "/api/admin/users", tc.body)
			signIn(c, admin)

			err := h.SetAccess(c)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	t.Run("unknown user passes through", func(t *testing.T) {
		h, userUC := newUserHandler(t)
		c, _ := newTestContext(http.MethodPatch, "/api/admin/users",
			`{"userId":"`+target.String()+`","googleApiAccess":true}`)
		signIn(c, admin)

		userUC.EXPECT().SetAccess(mock.Anything, admin, mock.Anything).Return(domainerrors.ErrUserNotFound)

		assert.ErrorIs(t, h.SetAccess(c), domainerrors.ErrUserNotFound)
	})
}
