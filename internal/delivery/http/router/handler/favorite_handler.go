package handler

import (
	"log/slog"
	"net/http"

	"justchoose/internal/delivery/http/middleware"
	"justchoose/internal/delivery/http/response"
	"justchoose/internal/domain/entity"
	"justchoose/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the caller's saved places.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest is a place with the display fields the client already has.
type AddFavoriteRequest struct {
	PlaceID   string   `json:"placeId" validate:"required,max=255"`
	Name      string   `json:"name" validate:"required,max=255"`
	Address   *string  `json:"address"`
	Rating    *float64 `json:"rating"`
	PriceTier *int     `json:"priceTier"`
}

// FavoriteResponse reports the favorite and whether it was stored.
type FavoriteResponse struct {
	Favorite  *entity.Favorite `json:"favorite,omitempty"`
	Persisted bool             `json:"persisted"`
}

// Add handles POST /api/favorites
func (h *FavoriteHandler) Add(c echo.Context) error {
	var req AddFavoriteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.favoriteUC.Add(c.Request().Context(), middleware.CallerFrom(c), &usecase.AddFavoriteInput{
		PlaceID: req.PlaceID,
		Snapshot: entity.PlaceSnapshot{
			Name:      req.Name,
			Address:   req.Address,
			Rating:    req.Rating,
			PriceTier: req.PriceTier,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, FavoriteResponse{Favorite: out.Favorite, Persisted: out.Persisted}, "")
}

// Remove handles DELETE /api/favorites?place_id=
func (h *FavoriteHandler) Remove(c echo.Context) error {
	persisted, err := h.favoriteUC.Remove(c.Request().Context(), middleware.CallerFrom(c), c.QueryParam("place_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, FavoriteResponse{Persisted: persisted}, "")
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.favoriteUC.List(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}
