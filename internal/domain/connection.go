package domain

import (
	"fmt"
	"time"
)

// ConnectionLeg is one single-vehicle segment of a multi-leg journey.
type ConnectionLeg struct {
	// From is the display name of the boarding station.
	From string `json:"from"`

	// To is the display name of the alighting station.
	To string `json:"to"`

	// Departure is the absolute departure instant of this leg.
	Departure time.Time `json:"departure"`

	// Arrival is the absolute arrival instant of this leg.
	Arrival time.Time `json:"arrival"`

	// TrainType is the vehicle category (e.g., "EC", "Os"). Optional.
	TrainType string `json:"trainType,omitempty"`

	// TrainNumber is the timetable number of the train. Optional.
	TrainNumber string `json:"trainNumber,omitempty"`
}

// IsValid reports whether the leg's times are chronologically consistent.
func (l ConnectionLeg) IsValid() bool {
	return !l.Departure.IsZero() && !l.Arrival.IsZero() && !l.Arrival.Before(l.Departure)
}

// Money is a monetary price. An absent price (nil *Money) or a zero amount
// from the upstream means "price unknown", never "free".
type Money struct {
	// Amount is the non-negative price in major currency units.
	Amount float64 `json:"amount"`

	// Currency is the ISO currency code, fixed per deployment.
	Currency string `json:"currency"`
}

// DefaultCurrency is the currency of the wired upstream.
const DefaultCurrency = "CZK"

// MoneyFromMinorUnits converts an upstream price in minor units
// (hundredths) to Money. Amounts of zero or less yield nil, the
// "price unknown" representation.
func MoneyFromMinorUnits(minor int64) *Money {
	if minor <= 0 {
		return nil
	}
	return &Money{
		Amount:   float64(minor) / 100,
		Currency: DefaultCurrency,
	}
}

// Connection is one complete origin-to-destination journey offer.
// Construct it with NewConnection so the derived fields stay consistent
// with the legs.
type Connection struct {
	// ID is an opaque upstream-scoped identifier, meaningful only together
	// with the search handle it was returned under.
	ID string `json:"id"`

	// Departure is the departure instant of the first leg.
	Departure time.Time `json:"departure"`

	// Arrival is the arrival instant of the last leg.
	Arrival time.Time `json:"arrival"`

	// DurationMinutes is derived from Departure and Arrival, never supplied
	// independently.
	DurationMinutes int `json:"durationMinutes"`

	// TransferCount is len(Legs) - 1.
	TransferCount int `json:"transferCount"`

	// Legs are the ordered segments of the journey, at least one.
	Legs []ConnectionLeg `json:"legs"`

	// Price is the total fare, or nil when unknown.
	Price *Money `json:"price,omitempty"`
}

// NewConnection builds a Connection from ordered legs, deriving the overall
// departure, arrival, duration and transfer count. It returns an error for
// an empty leg list; a connection without legs must not exist.
func NewConnection(id string, legs []ConnectionLeg, price *Money) (Connection, error) {
	if len(legs) == 0 {
		return Connection{}, fmt.Errorf("%w: connection %q has no legs", ErrInvalidConnection, id)
	}

	departure := legs[0].Departure
	arrival := legs[len(legs)-1].Arrival

	return Connection{
		ID:              id,
		Departure:       departure,
		Arrival:         arrival,
		DurationMinutes: durationMinutes(departure, arrival),
		TransferCount:   len(legs) - 1,
		Legs:            legs,
		Price:           price,
	}, nil
}

// WithPrice returns a copy of the connection carrying the given price.
// A nil price leaves the connection priceless ("price unknown").
func (c Connection) WithPrice(price *Money) Connection {
	c.Price = price
	return c
}

// durationMinutes rounds the span between two instants to whole minutes.
func durationMinutes(from, to time.Time) int {
	return int(to.Sub(from).Round(time.Minute) / time.Minute)
}
