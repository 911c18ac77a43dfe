package usecase

import (
	"context"

	"justchoose/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SpinInput asks the server to draw a winner among Options.
type SpinInput struct {
	Options       []entity.Place
	Seed          string  // Generated when empty.
	PriorRotation float64 // Current wheel angle in radians.
}

// RecordSpinInput is a spin settled by the client.
type RecordSpinInput struct {
	Seed       string
	Options    []entity.Place
	SelectedID string
}

// --- Output DTOs ---

// SpinOutput is a settled server-side spin.
type SpinOutput struct {
	ID          uuid.UUID
	Seed        string
	WinnerIndex int
	Selected    entity.Place
	Rotation    float64
	ExtraTurns  int
}

// ReplayOutput is the outcome of re-drawing a stored spin from its seed.
type ReplayOutput struct {
	Spin        *entity.SpinRecord
	WinnerIndex int
	Replayed    entity.Place
	Matches     bool // Whether the re-drawn winner equals the stored selection.
}

// SpinUsecase settles, records and replays spins.
type SpinUsecase interface {
	Spin(ctx context.Context, caller *entity.Caller, input *SpinInput) (*SpinOutput, error)
	Record(ctx context.Context, caller *entity.Caller, input *RecordSpinInput) (*entity.SpinRecord, error)
	History(ctx context.Context, caller *entity.Caller, limit int) ([]*entity.SpinRecord, error)
	Replay(ctx context.Context, id uuid.UUID) (*ReplayOutput, error)
	ReplayQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// SpinRecorder hands settled spins to storage without blocking the caller.
// Failures are logged and never reported back.
type SpinRecorder interface {
	Record(ctx context.Context, spin *entity.SpinRecord)
}

// SpinArchiveUsecase stores spins delivered to the recorder worker.
type SpinArchiveUsecase interface {
	// Archive persists spin. Archiving the same spin twice is a no-op.
	Archive(ctx context.Context, spin *entity.SpinRecord) error
}
