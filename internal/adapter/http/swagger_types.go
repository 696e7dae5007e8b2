// Package http provides swagger type definitions for API documentation.
// These types mirror the wire DTOs but are defined here to help swag
// generate proper documentation.
package http

// SwaggerSearchResponse represents the connection search response for
// swagger documentation.
// @Description Connection search results with resolved stations and booking link
type SwaggerSearchResponse struct {
	// FromStation is the canonical resolved origin station name
	FromStation string `json:"from_station" example:"Praha hl.n."`

	// ToStation is the canonical resolved destination station name
	ToStation string `json:"to_station" example:"Brno hl.n."`

	// SearchHandle correlates follow-up calls to this result set
	SearchHandle string `json:"search_handle,omitempty" example:"h-20251215-0001"`

	// BookingURL points a human at the carrier's booking page for this search
	BookingURL string `json:"booking_url" example:"https://www.cd.cz/spojeni-a-jizdenka/?fromName=Praha+hl.n.&toName=Brno+hl.n.&departure=2025-12-15T10:00"`

	// Connections are the journey offers in timetable order
	Connections []SwaggerConnection `json:"connections"`
}

// SwaggerConnection represents one journey offer.
// @Description One complete origin-to-destination journey
type SwaggerConnection struct {
	// ID identifies the connection within its search handle
	ID string `json:"id" example:"1"`

	// Departure is the departure time of the first leg, Czech local time
	Departure string `json:"departure" example:"2025-12-15T10:36:00+01:00"`

	// Arrival is the arrival time of the last leg, Czech local time
	Arrival string `json:"arrival" example:"2025-12-15T13:13:00+01:00"`

	// Duration is the total journey duration
	Duration SwaggerDuration `json:"duration"`

	// Transfers is the number of train changes (0 = direct)
	Transfers int `json:"transfers" example:"0"`

	// Legs are the ordered train segments
	Legs []SwaggerLeg `json:"legs"`

	// Price is the total fare; absent when unknown
	Price *SwaggerPrice `json:"price,omitempty"`
}

// SwaggerLeg represents one train segment.
// @Description One train segment of a journey
type SwaggerLeg struct {
	// From is the boarding station name
	From string `json:"from" example:"Praha hl.n."`

	// To is the alighting station name
	To string `json:"to" example:"Brno hl.n."`

	// Departure is the leg departure time, Czech local time
	Departure string `json:"departure" example:"2025-12-15T10:36:00+01:00"`

	// Arrival is the leg arrival time, Czech local time
	Arrival string `json:"arrival" example:"2025-12-15T13:13:00+01:00"`

	// Train names the operating train, type and number
	Train string `json:"train,omitempty" example:"EC 75"`
}

// SwaggerDuration contains journey duration information.
// @Description Journey duration information
type SwaggerDuration struct {
	// TotalMinutes is the journey duration in minutes
	TotalMinutes int `json:"total_minutes" example:"157"`

	// Formatted is a human-readable duration string
	Formatted string `json:"formatted" example:"2h 37m"`
}

// SwaggerPrice contains fare information.
// @Description Fare information
type SwaggerPrice struct {
	// Amount is the fare in crowns
	Amount float64 `json:"amount" example:"269"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"CZK"`

	// Formatted is a human-readable fare string
	Formatted string `json:"formatted" example:"269 Kč"`
}

// SwaggerLocation represents a timetable location.
// @Description A station or city in the timetable
type SwaggerLocation struct {
	// Key resolves back to the same place within one search
	Key string `json:"key" example:"5457076"`

	// Name is the display name
	Name string `json:"name" example:"Praha hl.n."`

	// Type classifies the location
	Type string `json:"type" example:"station"`
}

// SwaggerPassengerType represents one fare category.
// @Description A fare category
type SwaggerPassengerType struct {
	// Key identifies the category
	Key string `json:"key" example:"ADULT"`

	// Name is the display name
	Name string `json:"name" example:"Adult"`

	// Description explains eligibility
	Description string `json:"description,omitempty" example:"Traveller aged 15 and over without a discount entitlement"`

	// DiscountPercent is the nominal discount for the category
	DiscountPercent int `json:"discount_percent,omitempty" example:"0"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"station_not_found"`

	// Message is a human-readable error message
	Message string `json:"message" example:"no station matches query \"Atlantis\""`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
