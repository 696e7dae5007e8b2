// Package domain contains the core business entities and rules for the
// connection search system. These entities are upstream-agnostic and form
// the foundation upon which all other components are built.
package domain

// LocationType classifies a timetable location.
type LocationType string

// Known location types. Upstream codes outside this set map to
// LocationTypeUnknown.
const (
	LocationTypeStation LocationType = "station"
	LocationTypeCity    LocationType = "city"
	LocationTypeUnknown LocationType = "unknown"
)

// Location represents a station or city node in the timetable graph.
type Location struct {
	// Key is an opaque identifier that resolves back to the same physical
	// place within one upstream session.
	Key string `json:"key"`

	// Name is the display name. Never empty for a valid location.
	Name string `json:"name"`

	// Type classifies the location (station, city, unknown).
	Type LocationType `json:"type"`
}

// StationIdentity is the resolved form of a free-text station query.
// It is produced by resolving exactly one query string against the
// upstream's name search; a partial or guessed match is never returned
// silently.
type StationIdentity struct {
	// ID is the upstream-native numeric identifier.
	ID int64 `json:"id"`

	// Name is the canonical display name as known by the upstream.
	Name string `json:"name"`
}
