// Package testutil provides shared helpers for unit and integration tests.
package testutil

import (
	"fmt"
	"testing"
	"time"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// DateWrapper renders an instant in the vendor's /Date(ms)/ timestamp
// wrapper, as the upstream puts it on the wire.
func DateWrapper(t time.Time) string {
	return fmt.Sprintf("/Date(%d)/", t.UnixMilli())
}

// MinorUnits converts whole crowns to the upstream's minor-unit price
// representation (hundredths).
func MinorUnits(crowns int64) int64 {
	return crowns * 100
}
