package osm

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"justchoose/internal/domain/entity"
	"justchoose/internal/util"

	"github.com/pkg/errors"
)

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Search finds restaurant-tagged points of interest around center. OpenStreetMap carries
// no ratings, prices or photos, so those fields are always unknown.
func (c *Client) Search(ctx context.Context, query *entity.SearchQuery, center entity.Coordinates) ([]entity.Place, error) {
	radius := util.MilesToMeters(query.RadiusMiles)
	ql := buildOverpassQuery(center, radius, sanitizeCuisine(query.NormalizedCuisine()))

	form := url.Values{}
	form.Set("data", ql)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OverpassURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(ctx, "search", req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var resp overpassResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, errors.Wrap(err, "decode overpass response")
	}

	places := toPlaces(resp.Elements, center)
	if limit := c.cfg.MaxResults; limit > 0 && len(places) > limit {
		places = places[:limit]
	}

	return places, nil
}

func buildOverpassQuery(center entity.Coordinates, radiusMeters int, cuisine string) string {
	filter := `["amenity"="restaurant"]`
	if cuisine != "" {
		filter += fmt.Sprintf(`["cuisine"~"%s",i]`, cuisine)
	}
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, center.Lat, center.Lng)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		b.WriteString("  " + kind + filter + around + ";\n")
	}
	b.WriteString(");\nout center tags;\n")

	return b.String()
}

// sanitizeCuisine keeps only characters that are literal in both OverpassQL strings and regexes.
func sanitizeCuisine(cuisine string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '_', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, cuisine)
}

type rankedPlace struct {
	place    entity.Place
	distance float64
}

// toPlaces normalizes restaurant elements and orders them by distance from center.
func toPlaces(elements []overpassElement, center entity.Coordinates) []entity.Place {
	ranked := make([]rankedPlace, 0, len(elements))
	for _, el := range elements {
		if el.Tags["amenity"] != "restaurant" {
			continue
		}

		loc, ok := elementLocation(el)
		if !ok {
			continue
		}

		ranked = append(ranked, rankedPlace{
			place:    toPlace(el, loc),
			distance: util.DistanceMeters(center.Lat, center.Lng, loc.Lat, loc.Lng),
		})
	}

	slices.SortStableFunc(ranked, func(a, b rankedPlace) int {
		return cmp.Compare(a.distance, b.distance)
	})

	places := make([]entity.Place, len(ranked))
	for i, r := range ranked {
		places[i] = r.place
	}

	return places
}

func elementLocation(el overpassElement) (entity.Coordinates, bool) {
	if el.Lat != nil && el.Lon != nil {
		return entity.Coordinates{Lat: *el.Lat, Lng: *el.Lon}, true
	}
	if el.Center != nil {
		return entity.Coordinates{Lat: el.Center.Lat, Lng: el.Center.Lon}, true
	}

	return entity.Coordinates{}, false
}

func toPlace(el overpassElement, loc entity.Coordinates) entity.Place {
	name := strings.TrimSpace(el.Tags["name"])
	if name == "" {
		name = entity.UnnamedPlace
	}

	var parts []string
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city", "addr:state", "addr:postcode"} {
		if v := strings.TrimSpace(el.Tags[key]); v != "" {
			parts = append(parts, v)
		}
	}

	vicinity := el.Tags["addr:street"]
	if strings.TrimSpace(vicinity) == "" {
		vicinity = el.Tags["addr:city"]
	}

	return entity.Place{
		ID:               fmt.Sprintf("%s%s_%d", entity.OSMPlaceIDPrefix, el.Type, el.ID),
		Name:             name,
		Vicinity:         entity.StringPtr(vicinity),
		FormattedAddress: entity.StringPtr(strings.Join(parts, " ")),
		Location:         &loc,
	}
}
