package domain

import (
	"context"
	"time"
)

// StationDirectory resolves free-text station queries against the
// upstream's name search. Implementations must not cache across calls;
// each search re-resolves its stations.
type StationDirectory interface {
	// Resolve maps a free-text query to exactly one canonical station.
	// The upstream's own ranking decides: the first candidate wins. It
	// fails with an error wrapping ErrStationNotFound when the upstream
	// returns zero candidates.
	Resolve(ctx context.Context, query string) (StationIdentity, error)

	// SearchLocations returns up to limit locations matching the query,
	// optionally filtered by type. Zero matches yield an empty slice,
	// not an error.
	SearchLocations(ctx context.Context, query string, typeFilter LocationType, limit int) ([]Location, error)
}

// SessionOpener establishes the short-lived session a stateful upstream
// requires before search calls are accepted. Create-then-discard: one
// session per logical search, never pooled or reused.
type SessionOpener interface {
	// OpenSession issues the session-creation call. Failure is fatal to
	// the whole search and surfaces as an error wrapping
	// ErrUpstreamUnavailable.
	OpenSession(ctx context.Context) (SessionToken, error)
}

// ConnectionPage is the raw outcome of one primary search call, already
// normalized to domain shapes but not yet priced.
type ConnectionPage struct {
	// Connections are price-less journey offers in upstream order.
	Connections []Connection

	// IDs are the upstream connection identifiers, index-aligned with
	// Connections. LookupPrices must be called with this exact slice.
	IDs []string

	// Handle is the opaque token correlating this result set to
	// follow-up calls. May be empty for upstreams without handles.
	Handle string
}

// ConnectionGateway drives the upstream's connection search protocol.
//
// The price lookup is correlated with the primary search positionally:
// price i belongs to connection i. Implementations must preserve the
// upstream's ordering in both directions and never reorder between the
// two calls. Whether the upstream itself guarantees stable ordering is
// unverified against live behavior; treat it as a correctness risk.
type ConnectionGateway interface {
	// FindConnections issues the primary search call under the given
	// search context and fills in the context's search handle.
	FindConnections(ctx context.Context, sctx *SearchContext, from, to StationIdentity,
		departure time.Time, passengers, limit int) (*ConnectionPage, error)

	// LookupPrices fetches total fares for the given connection IDs, in
	// the same order, under the same session and passenger composition.
	// Entries are nil where the upstream reported no usable price.
	LookupPrices(ctx context.Context, sctx *SearchContext, ids []string, passengers int) ([]*Money, error)
}
