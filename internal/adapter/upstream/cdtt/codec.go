package cdtt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The upstream represents instants as a textual wrapper around an embedded
// millisecond epoch integer: "/Date(1639562400000)/". Some responses append
// a zone suffix ("/Date(1639562400000+0100)/"); the epoch is absolute, so
// the suffix carries no extra information and is ignored on decode.
var dateWrapperPattern = regexp.MustCompile(`^/Date\((-?\d+)(?:[+-]\d{4})?\)/$`)

// EncodeTime renders an instant in the upstream's native wrapper format,
// byte-exact for round-tripping into the protocol.
func EncodeTime(t time.Time) string {
	return fmt.Sprintf("/Date(%d)/", t.UnixMilli())
}

// DecodeTime extracts the embedded epoch from a wrapper string. The second
// return value is false when the input does not match the wrapper pattern;
// callers must not do time math on the zero value returned in that case.
func DecodeTime(s string) (time.Time, bool) {
	m := dateWrapperPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Matched digits that overflow int64.
		return time.Time{}, false
	}

	return time.UnixMilli(ms).UTC(), true
}
