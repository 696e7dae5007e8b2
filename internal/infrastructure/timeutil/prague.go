package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// Prague is the timezone of the Czech national timetable. All wall-clock
// values shown to users are rendered in it.
const Prague = "Europe/Prague"

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., the Prague constant).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// InPrague converts an instant to Czech local time.
func InPrague(t time.Time) time.Time {
	return t.In(MustGetLocation(Prague))
}

// FormatPrague renders an instant as RFC3339 in Czech local time.
func FormatPrague(t time.Time) string {
	return InPrague(t).Format(time.RFC3339)
}
