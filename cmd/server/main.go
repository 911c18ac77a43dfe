package main

import (
	"context"
	"log/slog"
	"os"

	"justchoose/config"
	"justchoose/internal/delivery"
	"justchoose/internal/delivery/http"
	"justchoose/internal/delivery/http/middleware"
	"justchoose/internal/delivery/http/router/handler"
	"justchoose/internal/domain/service"
	"justchoose/internal/infra/auth"
	"justchoose/internal/infra/auth/google"
	"justchoose/internal/infra/cache"
	logs "justchoose/internal/infra/log"
	"justchoose/internal/infra/persistence/postgres"
	googleplaces "justchoose/internal/infra/places/google"
	"justchoose/internal/infra/places/osm"
	"justchoose/internal/infra/pubsub"
	"justchoose/internal/infra/qrcode"
	"justchoose/internal/infra/ratelimit"
	"justchoose/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newClock,
		),
		cache.Module,
		pubsub.Module,
	)
}

func newClock() service.Clock {
	return service.SystemClock{}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFavoriteRepository,
			postgres.NewSpinRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.NewQRCodeService,
			newOSMLimiter,
			fx.Annotate(
				osm.New,
				fx.As(new(service.PlaceProvider)),
				fx.ResultTags(`name:"free"`),
			),
			fx.Annotate(
				googleplaces.New,
				fx.ResultTags(`name:"premium"`),
			),
		),
	)
}

// newOSMLimiter enforces the public Nominatim/Overpass usage policy across all requests.
func newOSMLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Places.OSM.MinInterval)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProviderGateway,
			impl.NewSearchService,
			impl.NewSpinRecorder,
			impl.NewSpinService,
			impl.NewFavoriteService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewSpinHandler,
			handler.NewFavoriteHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
