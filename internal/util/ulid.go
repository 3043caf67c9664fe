package util

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ulid.Make is safe for concurrent use
// and monotonic within the same millisecond.
func NewULID() string {
	return ulid.Make().String()
}

// NewPrefixedID joins the upper-cased parts and a fresh ULID with "_",
// e.g. NewPrefixedID("resp") -> "RESP_01HX...".
func NewPrefixedID(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if p != "" {
			segments = append(segments, strings.ToUpper(p))
		}
	}
	return strings.Join(append(segments, NewULID()), "_")
}
