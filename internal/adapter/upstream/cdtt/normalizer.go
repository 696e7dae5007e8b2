package cdtt

import (
	"fmt"
	"strconv"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
)

// normalizeLocation converts one vendor station item to a domain Location.
// Items without a display name are unusable and reported as not-ok.
func normalizeLocation(item stationItem) (domain.Location, bool) {
	if item.Name == "" {
		return domain.Location{}, false
	}

	return domain.Location{
		Key:  strconv.FormatInt(item.ID, 10),
		Name: item.Name,
		Type: normalizeLocationType(item.Type),
	}, true
}

// normalizeLocationType maps vendor type codes to the domain enumeration.
func normalizeLocationType(code int) domain.LocationType {
	switch code {
	case stationTypeStation:
		return domain.LocationTypeStation
	case stationTypeCity:
		return domain.LocationTypeCity
	default:
		return domain.LocationTypeUnknown
	}
}

// normalizeConnections converts the vendor's connection records to
// price-less domain connections, preserving upstream order. Records that
// cannot be normalized are skipped together with their IDs so the
// connection and ID slices stay index-aligned for the price lookup.
func normalizeConnections(raw []rawConnection) ([]domain.Connection, []string) {
	connections := make([]domain.Connection, 0, len(raw))
	ids := make([]string, 0, len(raw))

	for _, rc := range raw {
		conn, err := normalizeConnection(rc)
		if err != nil {
			// Skip records the vendor shaped in a way we cannot trust.
			continue
		}
		connections = append(connections, conn)
		ids = append(ids, rc.ID)
	}

	return connections, ids
}

// normalizeConnection converts a single vendor record. It fails when any
// segment carries a timestamp that does not decode or a leg that is not
// chronologically consistent; duration math on such values would be
// meaningless.
func normalizeConnection(raw rawConnection) (domain.Connection, error) {
	legs := make([]domain.ConnectionLeg, 0, len(raw.Trains))

	for _, train := range raw.Trains {
		departure, ok := DecodeTime(train.DateTime1)
		if !ok {
			return domain.Connection{}, fmt.Errorf("connection %q: undecodable departure %q", raw.ID, train.DateTime1)
		}
		arrival, ok := DecodeTime(train.DateTime2)
		if !ok {
			return domain.Connection{}, fmt.Errorf("connection %q: undecodable arrival %q", raw.ID, train.DateTime2)
		}

		leg := domain.ConnectionLeg{
			From:        train.From,
			To:          train.To,
			Departure:   departure,
			Arrival:     arrival,
			TrainType:   train.Type,
			TrainNumber: train.Num,
		}
		if !leg.IsValid() {
			return domain.Connection{}, fmt.Errorf("connection %q: leg arrives before it departs", raw.ID)
		}

		legs = append(legs, leg)
	}

	return domain.NewConnection(raw.ID, legs, nil)
}
