package google

import (
	"context"
	"strconv"

	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/entity"
	"justchoose/internal/infra/metrics"
	"justchoose/internal/util"

	"googlemaps.github.io/maps"
)

var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskPlaceID,
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskVicinity,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
	maps.PlaceDetailsFieldMaskPriceLevel,
	maps.PlaceDetailsFieldMaskPhotos,
	maps.PlaceDetailsFieldMaskGeometryLocation,
}

// Search runs a Nearby Search for restaurants around center.
// Price tiers (1..4) are sent on Google's 0-based scale as min and max of the selection.
func (c *Client) Search(ctx context.Context, query *entity.SearchQuery, center entity.Coordinates) ([]entity.Place, error) {
	ctx, cancel := c.timeout(ctx)
	defer cancel()

	req := buildNearbyRequest(query, center)
	resp, err := c.maps.NearbySearch(ctx, req)
	if err != nil {
		return nil, c.classify("search", err)
	}
	metrics.ObserveProviderCall(entity.ProviderGoogle, "search", metrics.OutcomeOK)

	places := make([]entity.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, fromSearchResult(r))
	}

	return places, nil
}

// PlaceDetails fetches the current display attributes of one place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*entity.Place, error) {
	ctx, cancel := c.timeout(ctx)
	defer cancel()

	r, err := c.maps.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  detailFields,
	})
	if err != nil {
		return nil, c.classify("details", err)
	}
	metrics.ObserveProviderCall(entity.ProviderGoogle, "details", metrics.OutcomeOK)

	place := normalize(r.PlaceID, r.Name, float64(r.Rating), r.UserRatingsTotal, r.PriceLevel,
		r.Vicinity, r.FormattedAddress, r.Photos, r.Geometry.Location)
	if place.ID == "" {
		place.ID = placeID
	}

	return &place, nil
}

func buildNearbyRequest(query *entity.SearchQuery, center entity.Coordinates) *maps.NearbySearchRequest {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: center.Lat, Lng: center.Lng},
		Radius:   uint(util.ClampInt(util.MilesToMeters(query.RadiusMiles), 1, maxRadiusMeters)),
		Type:     maps.PlaceTypeRestaurant,
		Keyword:  query.NormalizedCuisine(),
	}

	if minPrice, maxPrice, ok := query.PriceBounds(); ok {
		req.MinPrice = maps.PriceLevel(strconv.Itoa(minPrice))
		req.MaxPrice = maps.PriceLevel(strconv.Itoa(maxPrice))
	}

	return req
}

func fromSearchResult(r maps.PlacesSearchResult) entity.Place {
	return normalize(r.PlaceID, r.Name, float64(r.Rating), r.UserRatingsTotal, r.PriceLevel,
		r.Vicinity, r.FormattedAddress, r.Photos, r.Geometry.Location)
}

// normalize converts Google's zero values into unknowns.
func normalize(id, name string, rating float64, ratingCount, priceLevel int,
	vicinity, formatted string, photos []maps.Photo, loc maps.LatLng,
) entity.Place {
	place := entity.Place{
		ID:               id,
		Name:             name,
		Vicinity:         entity.StringPtr(vicinity),
		FormattedAddress: entity.StringPtr(formatted),
	}
	if place.Name == "" {
		place.Name = entity.UnnamedPlace
	}

	if rating > 0 {
		place.Rating = &rating
	}
	if ratingCount > 0 {
		place.RatingCount = &ratingCount
	}
	if priceLevel >= entity.MinPriceTier && priceLevel <= entity.MaxPriceTier {
		place.PriceTier = &priceLevel
	}
	if len(photos) > 0 && photos[0].PhotoReference != "" {
		ref := photos[0].PhotoReference
		place.PhotoReference = &ref
	}
	if loc.Lat != 0 || loc.Lng != 0 {
		place.Location = &entity.Coordinates{Lat: loc.Lat, Lng: loc.Lng}
	}

	return place
}

func notFound(text string) error {
	return domainerrors.ErrLocationNotFound.WithDetails(text)
}
