package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"justchoose/config"
	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/domain/wheel"
	"justchoose/internal/infra/metrics"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Spin sources, used as metric labels.
const (
	spinSourceServer = "server"
	spinSourceClient = "client"
)

// spinService implements the SpinUsecase interface.
type spinService struct {
	spinRepo      repository.SpinRepository
	recorder      usecase.SpinRecorder
	qrCodeService service.QRCodeService
	clock         service.Clock
	cfg           config.SpinConfig
	publicBaseURL string
	logger        *slog.Logger
}

// SpinServiceParams holds dependencies for SpinService, injected by Fx.
type SpinServiceParams struct {
	fx.In

	SpinRepo      repository.SpinRepository
	Recorder      usecase.SpinRecorder
	QRCodeService service.QRCodeService
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSpinService is the constructor for spinService.
func NewSpinService(params SpinServiceParams) usecase.SpinUsecase {
	var cfg config.SpinConfig
	if params.Config.Spin != nil {
		cfg = *params.Config.Spin
	}

	return &spinService{
		spinRepo:      params.SpinRepo,
		recorder:      params.Recorder,
		qrCodeService: params.QRCodeService,
		clock:         params.Clock,
		cfg:           cfg,
		publicBaseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		logger:        params.Logger,
	}
}

func (srv *spinService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Spin draws the winner first, derives the cosmetic rotation from it, then hands the record off.
func (srv *spinService) Spin(ctx context.Context, caller *entity.Caller, input *usecase.SpinInput) (*usecase.SpinOutput, error) {
	if err := validateOptions(input.Options); err != nil {
		return nil, err
	}

	outcome, err := wheel.New().Spin(len(input.Options), strings.TrimSpace(input.Seed))
	if err != nil {
		return nil, err
	}

	selected := input.Options[outcome.WinnerIndex]
	extraTurns := wheel.ExtraTurns(srv.cfg.MinExtraTurns, srv.cfg.MaxExtraTurns)
	rotation := wheel.Rotation(outcome.WinnerIndex, len(input.Options), input.PriorRotation, extraTurns)

	record, err := srv.newRecord(caller, outcome.Seed, input.Options, selected.ID)
	if err != nil {
		return nil, err
	}

	srv.recorder.Record(ctx, record)
	metrics.ObserveSpin(spinSourceServer, caller != nil)

	srv.log(ctx).Info("Spin settled",
		slog.String("spinID", record.ID.String()),
		slog.String("seed", outcome.Seed),
		slog.Int("winnerIndex", outcome.WinnerIndex),
		slog.Int("options", len(input.Options)),
	)

	return &usecase.SpinOutput{
		ID:          record.ID,
		Seed:        outcome.Seed,
		WinnerIndex: outcome.WinnerIndex,
		Selected:    selected,
		Rotation:    rotation,
		ExtraTurns:  extraTurns,
	}, nil
}

// Record accepts a spin settled by the client. The selection must be one of the options.
func (srv *spinService) Record(ctx context.Context, caller *entity.Caller, input *usecase.RecordSpinInput) (*entity.SpinRecord, error) {
	seed := strings.TrimSpace(input.Seed)
	if seed == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seed is required")
	}

	if err := validateOptions(input.Options); err != nil {
		return nil, err
	}

	if !slices.ContainsFunc(input.Options, func(p entity.Place) bool { return p.ID == input.SelectedID }) {
		return nil, domainerrors.ErrSelectionNotInOptions.WithDetails(input.SelectedID)
	}

	record, err := srv.newRecord(caller, seed, input.Options, input.SelectedID)
	if err != nil {
		return nil, err
	}

	srv.recorder.Record(ctx, record)
	metrics.ObserveSpin(spinSourceClient, caller != nil)

	srv.log(ctx).Info("Client spin recorded", slog.String("spinID", record.ID.String()))

	return record, nil
}

// History lists the caller's latest spins, capped at the configured history limit.
func (srv *spinService) History(ctx context.Context, caller *entity.Caller, limit int) ([]*entity.SpinRecord, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	if limit <= 0 || limit > srv.cfg.HistoryLimit {
		limit = srv.cfg.HistoryLimit
	}

	spins, err := srv.spinRepo.ListByOwner(ctx, caller.UserID, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list spin history", slog.String("userID", caller.UserID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list spin history")
	}

	return spins, nil
}

// Replay re-draws a stored spin from its seed and reports whether the winner matches.
func (srv *spinService) Replay(ctx context.Context, id uuid.UUID) (*usecase.ReplayOutput, error) {
	spin, err := srv.findSpin(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := wheel.Select(len(spin.Options), spin.Seed)
	if err != nil {
		return nil, err
	}

	replayed := spin.Options[outcome.WinnerIndex]

	return &usecase.ReplayOutput{
		Spin:        spin,
		WinnerIndex: outcome.WinnerIndex,
		Replayed:    replayed,
		Matches:     replayed.ID == spin.SelectedID,
	}, nil
}

// ReplayQRCode renders a QR code linking to the replay of a stored spin.
func (srv *spinService) ReplayQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.findSpin(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GeneratePNG(srv.replayURL(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate replay qr code")
	}

	return png, nil
}

func (srv *spinService) replayURL(id uuid.UUID) string {
	return srv.publicBaseURL + "/api/spins/" + id.String() + "/replay"
}

func (srv *spinService) findSpin(ctx context.Context, id uuid.UUID) (*entity.SpinRecord, error) {
	spin, err := srv.spinRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSpinNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("spin not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find spin")
	}

	return spin, nil
}

func (srv *spinService) newRecord(caller *entity.Caller, seed string, options []entity.Place, selectedID string) (*entity.SpinRecord, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate spin id")
	}

	record := &entity.SpinRecord{
		ID:         id,
		Seed:       seed,
		Options:    slices.Clone(options),
		SelectedID: selectedID,
		CreatedAt:  srv.clock.Now().UTC(),
	}
	if caller != nil {
		ownerID := caller.UserID
		record.OwnerID = &ownerID
	}

	return record, nil
}

// validateOptions requires at least two options with distinct, non-empty IDs.
func validateOptions(options []entity.Place) error {
	if len(options) < wheel.MinOptions {
		return domainerrors.ErrInsufficientOptions.WithDetails("options must contain at least 2 places")
	}

	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if strings.TrimSpace(option.ID) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("every option needs an id")
		}
		if _, dup := seen[option.ID]; dup {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate option id " + option.ID)
		}
		seen[option.ID] = struct{}{}
	}

	return nil
}
