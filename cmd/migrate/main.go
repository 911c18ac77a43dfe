package main

import (
	"context"
	"log/slog"

	"justchoose/config"
	logs "justchoose/internal/infra/log"
	"justchoose/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrations),
	).Run()
}

// runMigrations applies the schema once the connection is up, then stops the app.
func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Schema migrated", slog.Int("models", len(postgres.Models())))

			return params.Shutdown()
		},
	})
}
