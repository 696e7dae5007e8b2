package domain

import (
	"net/url"
	"time"
)

// BookingBaseURL is the carrier's public connection-and-ticket page that
// the booking deep link points at.
const BookingBaseURL = "https://www.cd.cz/spojeni-a-jizdenka/"

// bookingTimeLayout is the departure format the booking page accepts,
// whole-minute precision.
const bookingTimeLayout = "2006-01-02T15:04"

// BuildBookingURL constructs an external booking deep link from the
// resolved station names and the departure instant. It is a pure function:
// no network access, no failure modes. Station names are percent-encoded,
// never rejected, and the departure is truncated to whole minutes.
func BuildBookingURL(fromStation, toStation string, departure time.Time) string {
	q := url.Values{}
	q.Set("fromName", fromStation)
	q.Set("toName", toStation)
	q.Set("departure", departure.Truncate(time.Minute).Format(bookingTimeLayout))
	return BookingBaseURL + "?" + q.Encode()
}
