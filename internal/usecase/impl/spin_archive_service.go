package impl

import (
	"context"
	"log/slog"

	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/infra/metrics"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recorderModeArchive = "archive"

// spinArchiveService implements the SpinArchiveUsecase interface.
type spinArchiveService struct {
	spinRepo repository.SpinRepository
	logger   *slog.Logger
}

// SpinArchiveServiceParams holds dependencies for SpinArchiveService, injected by Fx.
type SpinArchiveServiceParams struct {
	fx.In

	SpinRepo repository.SpinRepository
	Logger   *slog.Logger
}

// NewSpinArchiveService is the constructor for spinArchiveService.
func NewSpinArchiveService(params SpinArchiveServiceParams) usecase.SpinArchiveUsecase {
	return &spinArchiveService{
		spinRepo: params.SpinRepo,
		logger:   params.Logger,
	}
}

// Archive stores a delivered spin. Redelivery of a stored spin is a no-op at the repository.
func (srv *spinArchiveService) Archive(ctx context.Context, spin *entity.SpinRecord) error {
	if spin == nil || spin.ID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("spin id is required")
	}
	if spin.Selected() == nil {
		return domainerrors.ErrSelectionNotInOptions.WithDetails(spin.SelectedID)
	}

	if err := srv.spinRepo.Create(ctx, spin); err != nil {
		metrics.ObserveSpinWrite(recorderModeArchive, metrics.OutcomeError)

		return errors.Wrap(err, "failed to archive spin")
	}

	metrics.ObserveSpinWrite(recorderModeArchive, metrics.OutcomeOK)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Spin archived", slog.String("spinID", spin.ID.String()))

	return nil
}
