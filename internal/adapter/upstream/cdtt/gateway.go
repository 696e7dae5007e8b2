package cdtt

import (
	"context"
	"time"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
)

// FindConnections issues the primary search call. The departure instant
// goes out in the vendor's /Date(ms)/ encoding and the passenger list is
// built as N copies of the default fare-class descriptor. The returned
// page preserves the upstream's ordering; the orchestrator relies on that
// order for the positional price correlation.
func (c *Client) FindConnections(ctx context.Context, sctx *domain.SearchContext,
	from, to domain.StationIdentity, departure time.Time, passengers, limit int) (*domain.ConnectionPage, error) {

	req := searchConnectionsRequest{
		SessionID:  string(sctx.SessionToken),
		FromID:     from.ID,
		ToID:       to.ID,
		Departure:  EncodeTime(departure),
		Passengers: passengerDescriptors(passengers),
		MaxCount:   limit,
	}

	var resp searchConnectionsResponse
	if err := c.call(ctx, endpointSearchConnections, req, &resp); err != nil {
		return nil, err
	}

	sctx.SearchHandle = resp.Handle

	connections, ids := normalizeConnections(resp.Connections)
	return &domain.ConnectionPage{
		Connections: connections,
		IDs:         ids,
		Handle:      resp.Handle,
	}, nil
}

// LookupPrices fetches total fares for the given connection IDs under the
// same session, handle and passenger composition as the primary call. The
// ID slice must be passed exactly as the page returned it; reordering
// would silently mismatch prices and connections. Zero and negative
// upstream amounts come back as nil ("price unknown").
func (c *Client) LookupPrices(ctx context.Context, sctx *domain.SearchContext,
	ids []string, passengers int) ([]*domain.Money, error) {

	req := connectionPricesRequest{
		SessionID:     string(sctx.SessionToken),
		Handle:        sctx.SearchHandle,
		ConnectionIDs: ids,
		Passengers:    passengerDescriptors(passengers),
	}

	var resp connectionPricesResponse
	if err := c.call(ctx, endpointConnectionPrices, req, &resp); err != nil {
		return nil, err
	}

	prices := make([]*domain.Money, len(ids))
	for i := range ids {
		if i >= len(resp.Prices) {
			break
		}
		prices[i] = domain.MoneyFromMinorUnits(resp.Prices[i])
	}

	return prices, nil
}

// passengerDescriptors builds the fixed default fare-class descriptor list
// the protocol expects, one entry per traveller.
func passengerDescriptors(count int) []string {
	descriptors := make([]string, count)
	for i := range descriptors {
		descriptors[i] = domain.DefaultPassengerTypeKey
	}
	return descriptors
}
