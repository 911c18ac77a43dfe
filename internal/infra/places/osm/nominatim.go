package osm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/entity"

	"github.com/pkg/errors"
)

type nominatimResult struct {
	PlaceID     json.Number `json:"place_id"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	DisplayName string      `json:"display_name"`
}

// Geocode resolves text with Nominatim, returning the single best match.
func (c *Client) Geocode(ctx context.Context, text string) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", text)
	params.Set("limit", "1")
	params.Set("addressdetails", "1")
	if c.cfg.CountryCodes != "" {
		params.Set("countrycodes", c.cfg.CountryCodes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.NominatimURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := c.do(ctx, "geocode", req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode nominatim response")
	}

	if len(results) == 0 {
		return nil, domainerrors.ErrLocationNotFound.WithDetails(text)
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse nominatim latitude %q", best.Lat)
	}
	lng, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse nominatim longitude %q", best.Lon)
	}

	return &entity.GeocodeResult{
		Coordinates:      entity.Coordinates{Lat: lat, Lng: lng},
		FormattedAddress: best.DisplayName,
		PlaceID:          entity.OSMPlaceIDPrefix + best.PlaceID.String(),
	}, nil
}
