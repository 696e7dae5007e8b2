package cdtt

import (
	"context"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
)

// Resolve maps a free-text station query to exactly one canonical station.
// The raw query string is passed through untouched; ranking is
// upstream-controlled and the first candidate wins. Zero candidates fail
// with an error wrapping domain.ErrStationNotFound. Nothing is cached:
// every search re-resolves its stations.
func (c *Client) Resolve(ctx context.Context, query string) (domain.StationIdentity, error) {
	req := matchStationsRequest{
		Mask:     query,
		MaxCount: c.stationCandidates,
		Type:     stationTypeStation,
	}

	var resp matchStationsResponse
	if err := c.call(ctx, endpointMatchStations, req, &resp); err != nil {
		return domain.StationIdentity{}, err
	}

	if len(resp.Objects) == 0 {
		return domain.StationIdentity{}, domain.NewStationNotFoundError(query)
	}

	best := resp.Objects[0].Item
	return domain.StationIdentity{ID: best.ID, Name: best.Name}, nil
}

// SearchLocations returns up to limit locations matching the query. Zero
// matches are a normal outcome and yield an empty slice.
func (c *Client) SearchLocations(ctx context.Context, query string, typeFilter domain.LocationType, limit int) ([]domain.Location, error) {
	req := matchStationsRequest{
		Mask:     query,
		MaxCount: limit,
		Type:     locationTypeCode(typeFilter),
	}

	var resp matchStationsResponse
	if err := c.call(ctx, endpointMatchStations, req, &resp); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		loc, ok := normalizeLocation(obj.Item)
		if !ok {
			continue
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// locationTypeCode maps a domain type filter to the vendor's code.
// Unknown or empty filters request all types.
func locationTypeCode(t domain.LocationType) int {
	switch t {
	case domain.LocationTypeStation:
		return stationTypeStation
	case domain.LocationTypeCity:
		return stationTypeCity
	default:
		return 0
	}
}
