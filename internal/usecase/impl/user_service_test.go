package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	mockRepo "justchoose/internal/mocks/repository"
	mockService "justchoose/internal/mocks/service"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	txUserRepo   *mockRepo.MockUserRepository
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockService.MockTokenService
	googleAuth   *mockService.MockOAuthAuthService
	service      usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	f := &userServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		tokenService: mockService.NewMockTokenService(t),
		googleAuth:   mockService.NewMockOAuthAuthService(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:         f.txManager,
		UserRepo:          f.userRepo,
		TokenService:      f.tokenService,
		GoogleAuthService: f.googleAuth,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return f
}

func (f *userServiceFixture) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
	f.repoFactory.EXPECT().NewUserRepository().Return(f.txUserRepo)
}

func googleUser() *service.OAuthUser {
	return &service.OAuthUser{
		Subject:       "google-sub-1",
		Email:         "diner@example.com",
		Name:          "Dana Diner",
		AvatarURL:     "https://example.com/a.png",
		EmailVerified: true,
	}
}

func TestUserService_GoogleLogin_FirstSignInCreatesUserWithoutPremium(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	newID := uuid.New()

	f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser(), nil)
	f.expectTransaction(ctx)
	f.txUserRepo.EXPECT().FindByGoogleSubject(ctx, "google-sub-1").Return(nil, repository.ErrUserNotFound)
	f.txUserRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.GoogleSubject == "google-sub-1" && !u.GoogleAPIAccess && u.Email == "diner@example.com"
	})).
		Run(func(_ context.Context, u *entity.User) { u.ID = newID }).
		Return(nil)
	f.tokenService.EXPECT().GenerateAccessToken(newID, "diner@example.com").Return("jwt", nil)
	f.tokenService.EXPECT().AccessTokenDuration().Return(time.Hour)

	out, err := f.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", out.AccessToken)
	assert.Equal(t, time.Hour, out.ExpiresIn)
	assert.Equal(t, newID, out.User.ID)
	assert.False(t, out.User.GoogleAPIAccess)
	assert.False(t, out.IsAdmin)
}

func TestUserService_GoogleLogin_ReturningUserKeepsEntitlement(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), GoogleSubject: "google-sub-1", Email: "old@example.com", GoogleAPIAccess: true}

	f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser(), nil)
	f.expectTransaction(ctx)
	f.txUserRepo.EXPECT().FindByGoogleSubject(ctx, "google-sub-1").Return(existing, nil)
	f.txUserRepo.EXPECT().UpdateProfile(ctx, existing).Return(nil)
	f.tokenService.EXPECT().GenerateAccessToken(existing.ID, "diner@example.com").Return("jwt", nil)
	f.tokenService.EXPECT().AccessTokenDuration().Return(time.Hour)

	out, err := f.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.True(t, out.User.GoogleAPIAccess)
	assert.Equal(t, "Dana Diner", out.User.Name)
	assert.Equal(t, "https://example.com/a.png", out.User.ImageURL)
}

func TestUserService_GoogleLogin_RetriesConcurrentFirstSignIn(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	winner := &entity.User{ID: uuid.New(), GoogleSubject: "google-sub-1"}

	f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser(), nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		}).
		Times(2)
	f.repoFactory.EXPECT().NewUserRepository().Return(f.txUserRepo).Times(2)
	f.txUserRepo.EXPECT().FindByGoogleSubject(ctx, "google-sub-1").Return(nil, repository.ErrUserNotFound).Once()
	f.txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists).Once()
	f.txUserRepo.EXPECT().FindByGoogleSubject(ctx, "google-sub-1").Return(winner, nil).Once()
	f.txUserRepo.EXPECT().UpdateProfile(ctx, winner).Return(nil)
	f.tokenService.EXPECT().GenerateAccessToken(winner.ID, "diner@example.com").Return("jwt", nil)
	f.tokenService.EXPECT().AccessTokenDuration().Return(time.Hour)

	out, err := f.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, out.User.ID)
}

func TestUserService_GoogleLogin_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("blank token", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: " "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newUserServiceFixture(t)
		f.googleAuth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("audience mismatch"))

		_, err := f.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newUserServiceFixture(t)
		f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser(), nil)
		f.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("db down"))

		_, err := f.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})
		assert.Error(t, err)
	})
}

func TestUserService_GetAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("reports entitlement and admin flag", func(t *testing.T) {
		f := newUserServiceFixture(t)
		caller := &entity.Caller{UserID: uuid.New(), Email: testAdminEmail}
		f.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(&entity.User{ID: caller.UserID, Email: testAdminEmail, GoogleAPIAccess: true}, nil)

		out, err := f.service.GetAccess(ctx, caller)
		require.NoError(t, err)
		assert.True(t, out.GoogleAPIAccess)
		assert.True(t, out.IsAdmin)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserServiceFixture(t)
		caller := newCaller()
		f.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.GetAccess(ctx, caller)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.service.GetAccess(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestUserService_AdminOperations(t *testing.T) {
	ctx := context.Background()
	admin := &entity.Caller{UserID: uuid.New(), Email: "Admin@Example.com"}

	t.Run("non-admin is forbidden", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.service.ListUsers(ctx, newCaller())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		err = f.service.SetAccess(ctx, newCaller(), &usecase.SetAccessInput{UserID: uuid.New(), GoogleAPIAccess: true})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.service.ListUsers(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("admin lists users", func(t *testing.T) {
		f := newUserServiceFixture(t)
		users := []*entity.User{{ID: uuid.New()}}
		f.userRepo.EXPECT().List(ctx).Return(users, nil)

		got, err := f.service.ListUsers(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("admin grants access", func(t *testing.T) {
		f := newUserServiceFixture(t)
		target := uuid.New()
		f.userRepo.EXPECT().SetGoogleAPIAccess(ctx, target, true).Return(nil)

		require.NoError(t, f.service.SetAccess(ctx, admin, &usecase.SetAccessInput{UserID: target, GoogleAPIAccess: true}))
	})

	t.Run("unknown target", func(t *testing.T) {
		f := newUserServiceFixture(t)
		target := uuid.New()
		f.userRepo.EXPECT().SetGoogleAPIAccess(ctx, target, false).Return(repository.ErrUserNotFound)

		err := f.service.SetAccess(ctx, admin, &usecase.SetAccessInput{UserID: target})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("missing target", func(t *testing.T) {
		f := newUserServiceFixture(t)

		err := f.service.SetAccess(ctx, admin, &usecase.SetAccessInput{})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
