// Package usecase contains the business logic for connection search
// operations. It orchestrates the upstream protocol steps: concurrent
// station resolution, session creation, the primary search call and the
// best-effort price lookup.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/logger"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/timeutil"
)

// Default timeout and sizing values.
const (
	DefaultSearchTimeout = 20 * time.Second
	DefaultPriceTimeout  = 5 * time.Second
	DefaultMaxResults    = 8
	DefaultMaxLocations  = 10
)

// ConnectionSearchUseCase is the core-facing interface the tool layer
// calls into.
type ConnectionSearchUseCase interface {
	// SearchConnections runs one orchestrated connection search. Zero
	// connections is a normal outcome, not an error. Price lookup
	// failures degrade to missing prices and never fail the search.
	SearchConnections(ctx context.Context, criteria domain.ConnectionCriteria) (*domain.ConnectionSearchResult, error)

	// SearchLocations looks up stations and cities by free-text query.
	// No results yields an empty slice.
	SearchLocations(ctx context.Context, query string, typeFilter domain.LocationType) ([]domain.Location, error)

	// PassengerTypes returns the static fare catalogue.
	PassengerTypes() []domain.PassengerType

	// ConnectionDetails, PriceOffer and MoreConnections exist in the
	// richer ticket-API variant. The wired upstream has no equivalent
	// capability, so they fail with an error wrapping ErrNotSupported
	// that points callers at SearchConnections.
	ConnectionDetails(ctx context.Context, searchHandle, connectionID string) (*domain.Connection, error)
	PriceOffer(ctx context.Context, searchHandle, connectionID string) (*domain.Money, error)
	MoreConnections(ctx context.Context, searchHandle string) (*domain.ConnectionSearchResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// SearchTimeout bounds one whole orchestrated search.
	SearchTimeout time.Duration

	// PriceTimeout bounds the best-effort price step independently so it
	// cannot delay the overall result past the caller's deadline.
	PriceTimeout time.Duration

	// MaxResults is the bounded connection count per search.
	MaxResults int

	// MaxLocations is the bounded candidate count per location lookup.
	MaxLocations int

	// Logger receives search diagnostics. Nil means no logging.
	Logger *logger.Logger

	// Clock supplies the current time for duration measurement.
	// Nil means the system clock.
	Clock timeutil.Clock
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout: DefaultSearchTimeout,
		PriceTimeout:  DefaultPriceTimeout,
		MaxResults:    DefaultMaxResults,
		MaxLocations:  DefaultMaxLocations,
	}
}

// connectionSearchUseCase implements ConnectionSearchUseCase.
type connectionSearchUseCase struct {
	directory domain.StationDirectory
	sessions  domain.SessionOpener
	gateway   domain.ConnectionGateway

	searchTimeout time.Duration
	priceTimeout  time.Duration
	maxResults    int
	maxLocations  int

	log   *logger.Logger
	clock timeutil.Clock
}

// NewConnectionSearchUseCase creates the use case with the given
// collaborators and configuration. If config is nil, defaults are used.
func NewConnectionSearchUseCase(directory domain.StationDirectory, sessions domain.SessionOpener,
	gateway domain.ConnectionGateway, config *Config) ConnectionSearchUseCase {

	cfg := DefaultConfig()
	if config != nil {
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		if config.PriceTimeout > 0 {
			cfg.PriceTimeout = config.PriceTimeout
		}
		if config.MaxResults > 0 {
			cfg.MaxResults = config.MaxResults
		}
		if config.MaxLocations > 0 {
			cfg.MaxLocations = config.MaxLocations
		}
		cfg.Logger = config.Logger
		cfg.Clock = config.Clock
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &connectionSearchUseCase{
		directory:     directory,
		sessions:      sessions,
		gateway:       gateway,
		searchTimeout: cfg.SearchTimeout,
		priceTimeout:  cfg.PriceTimeout,
		maxResults:    cfg.MaxResults,
		maxLocations:  cfg.MaxLocations,
		log:           log,
		clock:         clock,
	}
}

// resolveResult carries one side of the concurrent station resolution.
type resolveResult struct {
	side     string
	identity domain.StationIdentity
	err      error
}

// SearchConnections implements ConnectionSearchUseCase.SearchConnections.
func (uc *connectionSearchUseCase) SearchConnections(ctx context.Context, criteria domain.ConnectionCriteria) (*domain.ConnectionSearchResult, error) {
	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	log := uc.log.WithSearchID(uuid.NewString())
	start := uc.clock.Now()

	ctx, cancel := context.WithTimeout(ctx, uc.searchTimeout)
	defer cancel()

	// The two resolutions have no ordering dependency; everything after
	// them is strictly sequential because each step needs the previous
	// step's output.
	from, to, err := uc.resolveEndpoints(ctx, criteria)
	if err != nil {
		return nil, err
	}

	token, err := uc.sessions.OpenSession(ctx)
	if err != nil {
		return nil, err
	}

	// The search context lives exactly as long as this call and is
	// discarded on return.
	sctx := &domain.SearchContext{SessionToken: token}

	page, err := uc.gateway.FindConnections(ctx, sctx, from, to,
		criteria.Departure, criteria.Passengers, uc.maxResults)
	if err != nil {
		return nil, err
	}

	result := &domain.ConnectionSearchResult{
		Connections:  []domain.Connection{},
		FromStation:  from.Name,
		ToStation:    to.Name,
		SearchHandle: page.Handle,
		BookingURL:   domain.BuildBookingURL(from.Name, to.Name, criteria.Departure),
	}

	// "No service found" is a normal outcome.
	if len(page.Connections) == 0 {
		log.Info().
			Str("from", from.Name).
			Str("to", to.Name).
			Msg("Search returned no connections")
		return result, nil
	}

	prices := uc.lookupPricesBestEffort(ctx, log, sctx, page.IDs, criteria.Passengers)

	// Positional merge: price i belongs to connection i. Neither list has
	// been reordered since the primary call. A price of exactly zero was
	// already mapped to nil upstream of here; nil stays "unknown".
	result.Connections = make([]domain.Connection, 0, len(page.Connections))
	for i, conn := range page.Connections {
		if i < len(prices) && prices[i] != nil && prices[i].Amount > 0 {
			conn = conn.WithPrice(prices[i])
		}
		result.Connections = append(result.Connections, conn)
	}

	log.Info().
		Str("from", from.Name).
		Str("to", to.Name).
		Int("connections", len(result.Connections)).
		Int64("duration_ms", uc.clock.Now().Sub(start).Milliseconds()).
		Msg("Connection search completed")

	return result, nil
}

// resolveEndpoints resolves both station queries concurrently. Either
// failure aborts the whole search; the error already names the query that
// could not be resolved.
func (uc *connectionSearchUseCase) resolveEndpoints(ctx context.Context, criteria domain.ConnectionCriteria) (domain.StationIdentity, domain.StationIdentity, error) {
	// Buffered so a late result never blocks an abandoned goroutine.
	results := make(chan resolveResult, 2)

	for _, side := range []struct {
		name  string
		query string
	}{
		{name: "from", query: criteria.From},
		{name: "to", query: criteria.To},
	} {
		go func(name, query string) {
			identity, err := uc.directory.Resolve(ctx, query)
			results <- resolveResult{side: name, identity: identity, err: err}
		}(side.name, side.query)
	}

	var from, to domain.StationIdentity
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			return domain.StationIdentity{}, domain.StationIdentity{}, res.err
		}
		if res.side == "from" {
			from = res.identity
		} else {
			to = res.identity
		}
	}

	return from, to, nil
}

// lookupPricesBestEffort runs the price step under its own shorter
// deadline. Any failure degrades to a full slate of unknown prices; the
// search itself must still succeed. This is a one-shot attempt with a safe
// default, not a retry.
func (uc *connectionSearchUseCase) lookupPricesBestEffort(ctx context.Context, log *logger.Logger,
	sctx *domain.SearchContext, ids []string, passengers int) []*domain.Money {

	priceCtx, cancel := context.WithTimeout(ctx, uc.priceTimeout)
	defer cancel()

	prices, err := uc.gateway.LookupPrices(priceCtx, sctx, ids, passengers)
	if err != nil {
		log.Warn().Err(err).Msg("Price lookup failed, returning connections without prices")
		return make([]*domain.Money, len(ids))
	}

	return prices
}

// SearchLocations implements ConnectionSearchUseCase.SearchLocations.
func (uc *connectionSearchUseCase) SearchLocations(ctx context.Context, query string, typeFilter domain.LocationType) ([]domain.Location, error) {
	if query == "" {
		return nil, domain.WrapInvalidRequest("query is required")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.searchTimeout)
	defer cancel()

	locations, err := uc.directory.SearchLocations(ctx, query, typeFilter, uc.maxLocations)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return locations, nil
}

// PassengerTypes implements ConnectionSearchUseCase.PassengerTypes.
func (uc *connectionSearchUseCase) PassengerTypes() []domain.PassengerType {
	return domain.PassengerTypes()
}

// notSupportedGuidance points callers of richer-variant operations at the
// supported alternative.
const notSupportedGuidance = "the wired upstream has no such capability; use searchConnections instead"

// ConnectionDetails implements ConnectionSearchUseCase.ConnectionDetails.
func (uc *connectionSearchUseCase) ConnectionDetails(ctx context.Context, searchHandle, connectionID string) (*domain.Connection, error) {
	return nil, domain.NewNotSupportedError("getConnectionDetails", notSupportedGuidance)
}

// PriceOffer implements ConnectionSearchUseCase.PriceOffer.
func (uc *connectionSearchUseCase) PriceOffer(ctx context.Context, searchHandle, connectionID string) (*domain.Money, error) {
	return nil, domain.NewNotSupportedError("getPriceOffer", notSupportedGuidance)
}

// MoreConnections implements ConnectionSearchUseCase.MoreConnections.
func (uc *connectionSearchUseCase) MoreConnections(ctx context.Context, searchHandle string) (*domain.ConnectionSearchResult, error) {
	return nil, domain.NewNotSupportedError("getMoreConnections", notSupportedGuidance)
}

// Ensure connectionSearchUseCase implements ConnectionSearchUseCase at compile time.
var _ ConnectionSearchUseCase = (*connectionSearchUseCase)(nil)
