package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"justchoose/internal/delivery/http/middleware"
	"justchoose/internal/delivery/http/response"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SpinHandlerParams holds dependencies for SpinHandler, injected by Fx.
type SpinHandlerParams struct {
	fx.In

	SpinUC usecase.SpinUsecase
	Logger *slog.Logger
}

// SpinHandler serves the wheel: spins, recorded outcomes, history and replays.
type SpinHandler struct {
	spinUC usecase.SpinUsecase
	logger *slog.Logger
}

// NewSpinHandler is the constructor for SpinHandler
func NewSpinHandler(params SpinHandlerParams) *SpinHandler {
	return &SpinHandler{
		spinUC: params.SpinUC,
		logger: params.Logger,
	}
}

// SpinRequest asks the server to pick a winner. Options are places as returned by search.
type SpinRequest struct {
	Options       []entity.Place `json:"options"`
	Seed          string         `json:"seed" validate:"max=64"`
	PriorRotation float64        `json:"priorRotation"`
}

// SpinResponse is a settled spin with the rotation the wheel should animate to.
type SpinResponse struct {
	ID          uuid.UUID    `json:"id"`
	Seed        string       `json:"seed"`
	WinnerIndex int          `json:"winnerIndex"`
	Selected    entity.Place `json:"selected"`
	Rotation    float64      `json:"rotation"`
	ExtraTurns  int          `json:"extraTurns"`
}

// RecordSpinRequest is an outcome settled by the client.
type RecordSpinRequest struct {
	Seed       string         `json:"seed" validate:"required,max=64"`
	Options    []entity.Place `json:"options"`
	SelectedID string         `json:"selectedId" validate:"required"`
}

// RecordSpinResponse identifies a recorded spin.
type RecordSpinResponse struct {
	ID       uuid.UUID `json:"id"`
	Selected string    `json:"selected"`
	Seed     string    `json:"seed"`
}

// ReplayResponse compares a stored spin with a fresh draw from its seed.
type ReplayResponse struct {
	Spin        *entity.SpinRecord `json:"spin"`
	WinnerIndex int                `json:"winnerIndex"`
	Replayed    entity.Place       `json:"replayed"`
	Matches     bool               `json:"matches"`
}

// Spin handles POST /api/spins
func (h *SpinHandler) Spin(c echo.Context) error {
	var req SpinRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.spinUC.Spin(c.Request().Context(), middleware.CallerFrom(c), &usecase.SpinInput{
		Options:       req.Options,
		Seed:          req.Seed,
		PriorRotation: req.PriorRotation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, SpinResponse{
		ID:          out.ID,
		Seed:        out.Seed,
		WinnerIndex: out.WinnerIndex,
		Selected:    out.Selected,
		Rotation:    out.Rotation,
		ExtraTurns:  out.ExtraTurns,
	}, "")
}

// Record handles POST /api/spins/record
func (h *SpinHandler) Record(c echo.Context) error {
	var req RecordSpinRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	record, err := h.spinUC.Record(c.Request().Context(), middleware.CallerFrom(c), &usecase.RecordSpinInput{
		Seed:       req.Seed,
		Options:    req.Options,
		SelectedID: req.SelectedID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RecordSpinResponse{
		ID:       record.ID,
		Selected: record.SelectedID,
		Seed:     record.Seed,
	}, "")
}

// History handles GET /api/spins
func (h *SpinHandler) History(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be an integer")
		}
		limit = parsed
	}

	spins, err := h.spinUC.History(c.Request().Context(), middleware.CallerFrom(c), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, spins, "")
}

// Replay handles GET /api/spins/:id/replay
func (h *SpinHandler) Replay(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	out, err := h.spinUC.Replay(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ReplayResponse{
		Spin:        out.Spin,
		WinnerIndex: out.WinnerIndex,
		Replayed:    out.Replayed,
		Matches:     out.Matches,
	}, "")
}

// QRCode handles GET /api/spins/:id/qrcode and returns a PNG linking to the replay
func (h *SpinHandler) QRCode(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	png, err := h.spinUC.ReplayQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
