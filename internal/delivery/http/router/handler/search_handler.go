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

// geocodeTypeAutocomplete selects suggestions instead of a single resolved location.
const geocodeTypeAutocomplete = "autocomplete"

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves restaurant search and location resolution.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest is the body of POST /api/search.
// Radius and location rules are enforced by the use case.
type SearchRequest struct {
	LocationText string   `json:"locationText" validate:"max=200"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	RadiusMiles  float64  `json:"radiusMiles"`
	Cuisine      string   `json:"cuisine" validate:"max=64"`
	Price        *int     `json:"price"`
	PriceRanges  []int    `json:"priceRanges" validate:"max=4"`
}

// GeocodeRequest is the body of POST /api/geocode.
type GeocodeRequest struct {
	LocationText string `json:"locationText" validate:"required,max=200"`
	Type         string `json:"type" validate:"omitempty,oneof=geocode autocomplete"`
}

// GeocodeResponse is a resolved location.
type GeocodeResponse struct {
	Lat              float64             `json:"lat"`
	Lng              float64             `json:"lng"`
	FormattedAddress string              `json:"formattedAddress"`
	PlaceID          string              `json:"placeId"`
	Provider         entity.ProviderKind `json:"provider"`
	Attribution      string              `json:"attribution,omitempty"`
}

// AutocompleteResponse lists location suggestions.
type AutocompleteResponse struct {
	Suggestions []entity.LocationSuggestion `json:"suggestions"`
	Provider    entity.ProviderKind         `json:"provider"`
}

// Search handles POST /api/search
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.searchUC.Execute(c.Request().Context(), middleware.CallerFrom(c), &usecase.SearchInput{
		LocationText: req.LocationText,
		Lat:          req.Lat,
		Lng:          req.Lng,
		RadiusMiles:  req.RadiusMiles,
		Cuisine:      req.Cuisine,
		Price:        req.Price,
		PriceRanges:  req.PriceRanges,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Geocode handles POST /api/geocode for both full resolution and autocomplete
func (h *SearchHandler) Geocode(c echo.Context) error {
	var req GeocodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	caller := middleware.CallerFrom(c)

	if req.Type == geocodeTypeAutocomplete {
		out, err := h.searchUC.Autocomplete(ctx, caller, req.LocationText)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, AutocompleteResponse{
			Suggestions: out.Suggestions,
			Provider:    out.Provider,
		}, "")
	}

	out, err := h.searchUC.Geocode(ctx, caller, req.LocationText)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, GeocodeResponse{
		Lat:              out.Result.Lat,
		Lng:              out.Result.Lng,
		FormattedAddress: out.Result.FormattedAddress,
		PlaceID:          out.Result.PlaceID,
		Provider:         out.Provider,
		Attribution:      out.Attribution,
	}, "")
}
