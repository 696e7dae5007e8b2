package http

// SearchConnectionsResponseDTO is the data transfer object for connection
// search responses. Times are rendered in Czech local time because that is
// the timezone every ČD departure board uses.
type SearchConnectionsResponseDTO struct {
	FromStation  string          `json:"from_station"`
	ToStation    string          `json:"to_station"`
	SearchHandle string          `json:"search_handle,omitempty"`
	BookingURL   string          `json:"booking_url"`
	Connections  []ConnectionDTO `json:"connections"`
}

// ConnectionDTO is the data transfer object for one journey offer.
type ConnectionDTO struct {
	ID        string      `json:"id"`
	Departure string      `json:"departure"`
	Arrival   string      `json:"arrival"`
	Duration  DurationDTO `json:"duration"`
	Transfers int         `json:"transfers"`
	Legs      []LegDTO    `json:"legs"`
	Price     *PriceDTO   `json:"price,omitempty"`
}

// LegDTO is the data transfer object for one train segment.
type LegDTO struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Train     string `json:"train,omitempty"`
}

// DurationDTO carries the journey duration in both machine and human form.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO carries the fare in both machine and human form. Absent when
// the price is unknown.
type PriceDTO struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

// LocationDTO is the data transfer object for a timetable location.
type LocationDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SearchLocationsResponseDTO is the data transfer object for location
// search responses.
type SearchLocationsResponseDTO struct {
	Locations []LocationDTO `json:"locations"`
}

// PassengerTypeDTO is the data transfer object for one fare category.
type PassengerTypeDTO struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
}

// PassengerTypesResponseDTO is the data transfer object for the fare
// catalogue.
type PassengerTypesResponseDTO struct {
	PassengerTypes []PassengerTypeDTO `json:"passenger_types"`
}
