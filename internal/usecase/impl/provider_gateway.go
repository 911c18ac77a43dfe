// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// providerGateway implements the ProviderGateway interface.
type providerGateway struct {
	premium  service.PlaceProvider
	free     service.PlaceProvider
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProviderGatewayParams holds dependencies for the provider gateway, injected by Fx.
// Premium is nil when no Google API key is configured.
type ProviderGatewayParams struct {
	fx.In

	Premium  service.PlaceProvider `name:"premium" optional:"true"`
	Free     service.PlaceProvider `name:"free"`
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProviderGateway is the constructor for providerGateway.
func NewProviderGateway(params ProviderGatewayParams) usecase.ProviderGateway {
	return &providerGateway{
		premium:  params.Premium,
		free:     params.Free,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (g *providerGateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// ChooseProvider is the single entitlement decision: premium only for an
// authenticated, entitled caller while the premium provider is configured.
func ChooseProvider(authenticated, entitled, premiumConfigured bool) entity.ProviderKind {
	if authenticated && entitled && premiumConfigured {
		return entity.ProviderGoogle
	}

	return entity.ProviderOpenStreetMap
}

// Choose looks up the caller's entitlement for this request only.
func (g *providerGateway) Choose(ctx context.Context, caller *entity.Caller) entity.ProviderKind {
	if caller == nil {
		return ChooseProvider(false, false, g.premium != nil)
	}

	user, err := g.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		g.log(ctx).Warn("Entitlement lookup failed, using free provider",
			slog.String("userID", caller.UserID.String()),
			slog.Any("error", err),
		)

		return entity.ProviderOpenStreetMap
	}

	kind := ChooseProvider(true, user.GoogleAPIAccess, g.premium != nil)
	if user.GoogleAPIAccess && !kind.IsPremium() {
		g.log(ctx).Info("Entitled caller served by free provider, premium provider not configured",
			slog.String("userID", caller.UserID.String()),
		)
	}

	return kind
}

// Provider returns the adapter for kind.
func (g *providerGateway) Provider(kind entity.ProviderKind) (service.PlaceProvider, error) {
	switch kind {
	case entity.ProviderGoogle:
		if g.premium == nil {
			return nil, domainerrors.ErrProviderCapability.WithDetails("google places is not configured")
		}

		return g.premium, nil
	case entity.ProviderOpenStreetMap:
		return g.free, nil
	default:
		return nil, errors.Errorf("unknown places provider %q", kind)
	}
}

// PlaceDetails looks placeID up on the premium provider.
func (g *providerGateway) PlaceDetails(ctx context.Context, placeID string) (*entity.Place, error) {
	detailer, ok := g.premium.(service.PlaceDetailer)
	if !ok {
		return nil, domainerrors.ErrProviderCapability.WithDetails("place details require google places")
	}

	return detailer.PlaceDetails(ctx, placeID)
}
