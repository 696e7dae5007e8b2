package http

import (
	"fmt"
	"strings"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/timeutil"
	"github.com/JanProvaznik/cd-mcp/pkg/currency"
)

// ToDomainCriteria converts a SearchConnectionsRequest to
// domain.ConnectionCriteria. Call Validate first; an unparsable departure
// maps to the zero instant, which the domain layer rejects.
func ToDomainCriteria(req *SearchConnectionsRequest) domain.ConnectionCriteria {
	departure, _ := req.ParseDeparture()

	return domain.ConnectionCriteria{
		From:       strings.TrimSpace(req.From),
		To:         strings.TrimSpace(req.To),
		Departure:  departure,
		Passengers: req.Passengers,
	}
}

// ToSearchResponseDTO converts a domain search result to its wire form.
func ToSearchResponseDTO(result *domain.ConnectionSearchResult) *SearchConnectionsResponseDTO {
	if result == nil {
		return nil
	}

	dto := &SearchConnectionsResponseDTO{
		FromStation:  result.FromStation,
		ToStation:    result.ToStation,
		SearchHandle: result.SearchHandle,
		BookingURL:   result.BookingURL,
		Connections:  make([]ConnectionDTO, len(result.Connections)),
	}

	for i, conn := range result.Connections {
		dto.Connections[i] = ToConnectionDTO(&conn)
	}

	return dto
}

// ToConnectionDTO converts a domain Connection to a ConnectionDTO.
func ToConnectionDTO(conn *domain.Connection) ConnectionDTO {
	dto := ConnectionDTO{
		ID:        conn.ID,
		Departure: timeutil.FormatPrague(conn.Departure),
		Arrival:   timeutil.FormatPrague(conn.Arrival),
		Duration: DurationDTO{
			TotalMinutes: conn.DurationMinutes,
			Formatted:    formatDuration(conn.DurationMinutes),
		},
		Transfers: conn.TransferCount,
		Legs:      make([]LegDTO, len(conn.Legs)),
		Price:     toPriceDTO(conn.Price),
	}

	for i, leg := range conn.Legs {
		dto.Legs[i] = LegDTO{
			From:      leg.From,
			To:        leg.To,
			Departure: timeutil.FormatPrague(leg.Departure),
			Arrival:   timeutil.FormatPrague(leg.Arrival),
			Train:     formatTrain(leg),
		}
	}

	return dto
}

// ToLocationsResponseDTO converts domain locations to their wire form.
func ToLocationsResponseDTO(locations []domain.Location) *SearchLocationsResponseDTO {
	dto := &SearchLocationsResponseDTO{
		Locations: make([]LocationDTO, len(locations)),
	}
	for i, loc := range locations {
		dto.Locations[i] = LocationDTO{
			Key:  loc.Key,
			Name: loc.Name,
			Type: string(loc.Type),
		}
	}
	return dto
}

// ToPassengerTypesResponseDTO converts the fare catalogue to its wire form.
func ToPassengerTypesResponseDTO(types []domain.PassengerType) *PassengerTypesResponseDTO {
	dto := &PassengerTypesResponseDTO{
		PassengerTypes: make([]PassengerTypeDTO, len(types)),
	}
	for i, pt := range types {
		dto.PassengerTypes[i] = PassengerTypeDTO{
			Key:             pt.Key,
			Name:            pt.Name,
			Description:     pt.Description,
			DiscountPercent: pt.DiscountPercent,
		}
	}
	return dto
}

// toPriceDTO converts an optional price. Nil stays nil: an unknown price is
// omitted from the response rather than rendered as zero.
func toPriceDTO(price *domain.Money) *PriceDTO {
	if price == nil {
		return nil
	}
	return &PriceDTO{
		Amount:    price.Amount,
		Currency:  price.Currency,
		Formatted: currency.FormatCZK(price.Amount),
	}
}

// formatDuration renders a minute count as "2h 37m" or "45m".
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// formatTrain joins the train type and number, e.g. "EC 75".
func formatTrain(leg domain.ConnectionLeg) string {
	switch {
	case leg.TrainType != "" && leg.TrainNumber != "":
		return leg.TrainType + " " + leg.TrainNumber
	case leg.TrainType != "":
		return leg.TrainType
	default:
		return leg.TrainNumber
	}
}
