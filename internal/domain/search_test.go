package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectionCriteria_Validate(t *testing.T) {
	validDeparture := time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		criteria ConnectionCriteria
		wantErr  string
	}{
		{
			name:     "valid criteria",
			criteria: ConnectionCriteria{From: "Praha", To: "Brno", Departure: validDeparture, Passengers: 1},
		},
		{
			name:     "maximum passengers allowed",
			criteria: ConnectionCriteria{From: "Praha", To: "Brno", Departure: validDeparture, Passengers: 9},
		},
		{
			name:     "missing from",
			criteria: ConnectionCriteria{To: "Brno", Departure: validDeparture, Passengers: 1},
			wantErr:  "from is required",
		},
		{
			name:     "missing to",
			criteria: ConnectionCriteria{From: "Praha", Departure: validDeparture, Passengers: 1},
			wantErr:  "to is required",
		},
		{
			name:     "missing departure",
			criteria: ConnectionCriteria{From: "Praha", To: "Brno", Passengers: 1},
			wantErr:  "departure is required",
		},
		{
			name:     "too many passengers",
			criteria: ConnectionCriteria{From: "Praha", To: "Brno", Departure: validDeparture, Passengers: 10},
			wantErr:  "passengers must be between 1 and 9",
		},
		{
			name:     "negative passengers",
			criteria: ConnectionCriteria{From: "Praha", To: "Brno", Departure: validDeparture, Passengers: -1},
			wantErr:  "passengers must be between 1 and 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConnectionCriteria_Normalize(t *testing.T) {
	c := ConnectionCriteria{From: "Praha", To: "Brno", Departure: time.Now()}
	c.Normalize()
	assert.Equal(t, 1, c.Passengers, "zero passengers defaults to one")

	c.Passengers = 4
	c.Normalize()
	assert.Equal(t, 4, c.Passengers, "explicit count is kept")
}

func TestPassengerTypes(t *testing.T) {
	types := PassengerTypes()
	assert.NotEmpty(t, types)

	keys := make(map[string]bool, len(types))
	for _, pt := range types {
		assert.NotEmpty(t, pt.Key)
		assert.NotEmpty(t, pt.Name)
		assert.False(t, keys[pt.Key], "keys must be unique")
		keys[pt.Key] = true
		assert.GreaterOrEqual(t, pt.DiscountPercent, 0)
		assert.LessOrEqual(t, pt.DiscountPercent, 100)
	}
	assert.True(t, keys[DefaultPassengerTypeKey], "default fare class must exist")

	// Each call returns a fresh slice.
	types[0].Name = "mutated"
	assert.NotEqual(t, "mutated", PassengerTypes()[0].Name)
}
