package impl

import (
	"context"
	"log/slog"
	"strings"

	"justchoose/config"
	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	admins            *config.AdminConfig
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		admins:            params.Config.Admin,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GoogleLogin verifies the Google ID token, creates or refreshes the account and issues a session token.
func (srv *userService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("idToken is required")
	}

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google login rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	user, err := srv.upsertGoogleUser(ctx, oauthUser)
	// A concurrent first sign-in may have created the account in between.
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		user, err = srv.upsertGoogleUser(ctx, oauthUser)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to save Google user", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save google user")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in with Google", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   srv.tokenService.AccessTokenDuration(),
		User:        user,
		IsAdmin:     srv.admins.IsAdmin(user.Email),
	}, nil
}

// upsertGoogleUser creates the account without premium access on first sign-in,
// otherwise refreshes its profile and keeps the entitlement as is.
func (srv *userService) upsertGoogleUser(ctx context.Context, oauthUser *service.OAuthUser) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByGoogleSubject(ctx, oauthUser.Subject)
		if errors.Is(err, repository.ErrUserNotFound) {
			created := &entity.User{
				GoogleSubject:   oauthUser.Subject,
				Email:           oauthUser.Email,
				Name:            oauthUser.Name,
				ImageURL:        oauthUser.AvatarURL,
				GoogleAPIAccess: false,
			}
			if err := userRepo.Create(ctx, created); err != nil {
				return err
			}
			user = created

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by google subject")
		}

		existing.Email = oauthUser.Email
		existing.Name = oauthUser.Name
		existing.ImageURL = oauthUser.AvatarURL
		if err := userRepo.UpdateProfile(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		user = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetAccess reports the caller's provider entitlement.
func (srv *userService) GetAccess(ctx context.Context, caller *entity.Caller) (*usecase.AccessOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return &usecase.AccessOutput{
		GoogleAPIAccess: user.GoogleAPIAccess,
		IsAdmin:         srv.admins.IsAdmin(user.Email),
	}, nil
}

// ListUsers returns every account. Administrators only.
func (srv *userService) ListUsers(ctx context.Context, caller *entity.Caller) ([]*entity.User, error) {
	if err := srv.requireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetAccess grants or revokes premium access. Administrators only.
func (srv *userService) SetAccess(ctx context.Context, caller *entity.Caller, input *usecase.SetAccessInput) error {
	if err := srv.requireAdmin(caller); err != nil {
		return err
	}
	if input.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	err := srv.userRepo.SetGoogleAPIAccess(ctx, input.UserID, input.GoogleAPIAccess)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to set google api access")
	}

	srv.log(ctx).Info("Provider entitlement changed",
		slog.String("admin", caller.Email),
		slog.String("userID", input.UserID.String()),
		slog.Bool("googleApiAccess", input.GoogleAPIAccess),
	)

	return nil
}

func (srv *userService) requireAdmin(caller *entity.Caller) error {
	if caller == nil {
		return domainerrors.ErrUnauthorized
	}
	if !srv.admins.IsAdmin(caller.Email) {
		return domainerrors.ErrForbidden.WithDetails("administrator access required")
	}

	return nil
}
