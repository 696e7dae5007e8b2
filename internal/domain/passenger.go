package domain

// PassengerType is a fare category. The set is static and enumerable; the
// upstream has no dedicated endpoint for it.
type PassengerType struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DiscountPercent int    `json:"discountPercent,omitempty"`
}

// DefaultPassengerTypeKey is the fare class used for every passenger slot
// in a search when the caller does not pick one.
const DefaultPassengerTypeKey = "ADULT"

// PassengerTypes returns the fare catalogue of the wired upstream.
// The slice is freshly allocated on each call so callers may not mutate
// shared state.
func PassengerTypes() []PassengerType {
	return []PassengerType{
		{Key: "ADULT", Name: "Adult", Description: "Traveller aged 15 and over without a discount entitlement"},
		{Key: "CHILD_6_15", Name: "Child 6-15", Description: "Child aged 6 to 15", DiscountPercent: 50},
		{Key: "STUDENT", Name: "Student", Description: "Student up to age 26 with a valid certificate", DiscountPercent: 50},
		{Key: "SENIOR", Name: "Senior 65+", Description: "Traveller aged 65 and over", DiscountPercent: 50},
		{Key: "ZTP", Name: "ZTP", Description: "Holder of a ZTP or ZTP/P disability card", DiscountPercent: 75},
	}
}
