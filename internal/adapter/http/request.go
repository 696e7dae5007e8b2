// Package http provides the HTTP tool layer for the connection search API.
// It handles request parsing, validation, response formatting, and error
// mapping; no search logic lives here.
package http

import (
	"strings"
	"time"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/timeutil"
)

// SearchConnectionsRequest is the request body for the connection search
// tool.
type SearchConnectionsRequest struct {
	// From is the free-text origin station query (e.g., "Praha hl.n.")
	From string `json:"from"`

	// To is the free-text destination station query (e.g., "Brno")
	To string `json:"to"`

	// Departure is the requested departure time. RFC 3339, or a local
	// timestamp without a zone which is read as Czech time.
	Departure string `json:"departure"`

	// Passengers is the number of travellers (1-9, defaults to 1)
	Passengers int `json:"passengers,omitempty"`
}

// SearchLocationsRequest is the request body for the location search tool.
type SearchLocationsRequest struct {
	// Query is the free-text location name prefix
	Query string `json:"query"`

	// Type optionally restricts results: station or city
	Type string `json:"type,omitempty"`
}

// ConnectionDetailsRequest is the request body for the connection details
// tool.
type ConnectionDetailsRequest struct {
	// SearchHandle is the handle returned by a previous search
	SearchHandle string `json:"searchHandle"`

	// ConnectionID identifies a connection within that search
	ConnectionID string `json:"connectionId"`
}

// departureLayouts are tried in order when the departure string carries no
// zone designator. A zoneless timestamp is read as Czech local time.
var departureLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Valid location type filters. Empty means no filter.
var validLocationTypes = map[string]bool{
	"":                                true,
	string(domain.LocationTypeStation): true,
	string(domain.LocationTypeCity):    true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// The parsed departure instant is available through ParseDeparture after a
// successful Validate.
func (r *SearchConnectionsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.From) == "" {
		errs.Add("from", "from is required")
	}
	if strings.TrimSpace(r.To) == "" {
		errs.Add("to", "to is required")
	}

	if strings.TrimSpace(r.Departure) == "" {
		errs.Add("departure", "departure is required")
	} else if _, err := r.ParseDeparture(); err != nil {
		errs.Add("departure", "departure must be an RFC 3339 timestamp or a local time like 2025-12-15T10:00")
	}

	if r.Passengers < 0 || r.Passengers > domain.MaxPassengers {
		errs.Add("passengers", "passengers must be between 1 and 9")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ParseDeparture parses the departure string. Zoned timestamps keep their
// offset; zoneless ones are interpreted in Europe/Prague, matching what a
// traveller typing a local time means.
func (r *SearchConnectionsRequest) ParseDeparture() (time.Time, error) {
	raw := strings.TrimSpace(r.Departure)

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	prague := timeutil.MustGetLocation(timeutil.Prague)
	var lastErr error
	for _, layout := range departureLayouts {
		t, err := time.ParseInLocation(layout, raw, prague)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Validate validates the location search request.
func (r *SearchLocationsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Query) == "" {
		errs.Add("query", "query is required")
	}

	if !validLocationTypes[strings.ToLower(r.Type)] {
		errs.Add("type", "type must be one of: station, city")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the connection details request.
func (r *ConnectionDetailsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.SearchHandle) == "" {
		errs.Add("searchHandle", "searchHandle is required")
	}
	if strings.TrimSpace(r.ConnectionID) == "" {
		errs.Add("connectionId", "connectionId is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
