package domain

import (
	"fmt"
	"time"
)

// Passenger count bounds accepted by a search.
const (
	MinPassengers = 1
	MaxPassengers = 9
)

// ConnectionCriteria defines the parameters for a connection search request.
type ConnectionCriteria struct {
	// From is the free-text name of the origin station.
	From string `json:"from"`

	// To is the free-text name of the destination station.
	To string `json:"to"`

	// Departure is the requested departure wall-clock instant.
	Departure time.Time `json:"departure"`

	// Passengers is the number of travellers (1-9, default 1).
	Passengers int `json:"passengers"`
}

// Normalize fills in defaulted fields. Call before Validate.
func (c *ConnectionCriteria) Normalize() {
	if c.Passengers == 0 {
		c.Passengers = MinPassengers
	}
}

// Validate checks the criteria and returns a wrapped ErrInvalidRequest
// error when a field is out of range.
func (c *ConnectionCriteria) Validate() error {
	if c.From == "" {
		return WrapInvalidRequest("from is required")
	}
	if c.To == "" {
		return WrapInvalidRequest("to is required")
	}
	if c.Departure.IsZero() {
		return WrapInvalidRequest("departure is required")
	}
	if c.Passengers < MinPassengers || c.Passengers > MaxPassengers {
		return WrapInvalidRequest("passengers must be between %d and %d, got %d",
			MinPassengers, MaxPassengers, c.Passengers)
	}
	return nil
}

// SessionToken is a short-lived credential required by a stateful upstream
// before search calls are accepted.
type SessionToken string

// SearchContext is the ephemeral correlation state for one search call.
// The orchestrator owns it for the duration of a single search and discards
// it on return; it never leaks into the returned domain objects and is
// never reused across unrelated searches.
type SearchContext struct {
	// SessionToken authenticates follow-up calls within the search.
	SessionToken SessionToken

	// SearchHandle correlates the primary result set to the price lookup.
	// Empty until the primary search call returns.
	SearchHandle string
}

// ConnectionSearchResult is the outcome of one orchestrated search.
type ConnectionSearchResult struct {
	// Connections are the journey offers in upstream order. Empty when the
	// upstream found no service; that is a normal outcome, not an error.
	Connections []Connection `json:"connections"`

	// FromStation is the canonical resolved origin name.
	FromStation string `json:"fromStation"`

	// ToStation is the canonical resolved destination name.
	ToStation string `json:"toStation"`

	// SearchHandle is the opaque handle of the upstream result set, when
	// the upstream issued one.
	SearchHandle string `json:"searchHandle,omitempty"`

	// BookingURL is a deep link to the carrier's booking page for the
	// resolved stations and departure time.
	BookingURL string `json:"bookingUrl"`
}

// String renders the criteria for log context.
func (c ConnectionCriteria) String() string {
	return fmt.Sprintf("%s -> %s at %s (%d pax)",
		c.From, c.To, c.Departure.Format(time.RFC3339), c.Passengers)
}
