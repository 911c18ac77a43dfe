package impl

import (
	"context"
	"log/slog"
	"time"

	"justchoose/config"
	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/constants"
	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/infra/metrics"
	"justchoose/internal/usecase"

	"go.uber.org/fx"
)

const (
	spinWriteTimeout = 10 * time.Second

	recorderModeDirect = "direct"
	recorderModePubSub = "pubsub"
)

// spawnFunc runs fn in the background.
type spawnFunc func(fn func())

func goSpawn(fn func()) {
	go fn()
}

// SpinRecorderParams holds dependencies for the spin recorder, injected by Fx.
type SpinRecorderParams struct {
	fx.In

	SpinRepo  repository.SpinRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSpinRecorder writes spins directly unless a Pub/Sub provider is configured.
func NewSpinRecorder(params SpinRecorderParams) usecase.SpinRecorder {
	provider := constants.PubSubProviderNone
	if params.Config.PubSub != nil {
		provider = params.Config.PubSub.Provider
	}

	switch provider {
	case constants.PubSubProviderLocal, constants.PubSubProviderGoogle:
		return &publishingSpinRecorder{
			publisher: params.Publisher,
			logger:    params.Logger,
			spawn:     goSpawn,
		}
	default:
		return &directSpinRecorder{
			spinRepo: params.SpinRepo,
			logger:   params.Logger,
			spawn:    goSpawn,
		}
	}
}

// directSpinRecorder writes the spin from a goroutine that outlives the request.
type directSpinRecorder struct {
	spinRepo repository.SpinRepository
	logger   *slog.Logger
	spawn    spawnFunc
}

func (r *directSpinRecorder) Record(ctx context.Context, spin *entity.SpinRecord) {
	detached := context.WithoutCancel(ctx)
	log := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	r.spawn(func() {
		writeCtx, cancel := context.WithTimeout(detached, spinWriteTimeout)
		defer cancel()

		if err := r.spinRepo.Create(writeCtx, spin); err != nil {
			log.Error("Failed to persist spin", slog.String("spinID", spin.ID.String()), slog.Any("error", err))
			metrics.ObserveSpinWrite(recorderModeDirect, metrics.OutcomeError)

			return
		}

		metrics.ObserveSpinWrite(recorderModeDirect, metrics.OutcomeOK)
	})
}

// publishingSpinRecorder hands the spin to the recorder worker through Pub/Sub.
type publishingSpinRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	spawn     spawnFunc
}

func (r *publishingSpinRecorder) Record(ctx context.Context, spin *entity.SpinRecord) {
	detached := context.WithoutCancel(ctx)
	log := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	event := &service.SpinRecordedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Spin:      spin,
	}

	r.spawn(func() {
		publishCtx, cancel := context.WithTimeout(detached, spinWriteTimeout)
		defer cancel()

		if err := r.publisher.PublishSpinRecorded(publishCtx, event); err != nil {
			log.Error("Failed to publish spin", slog.String("spinID", spin.ID.String()), slog.Any("error", err))
			metrics.ObserveSpinWrite(recorderModePubSub, metrics.OutcomeError)

			return
		}

		metrics.ObserveSpinWrite(recorderModePubSub, metrics.OutcomeOK)
	})
}
