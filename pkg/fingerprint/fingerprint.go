// Package fingerprint derives the canonical deduplication key for a
// search request. Two requests that normalize to the same tuple share a
// fingerprint and are treated as the same search by the cache and intake.
package fingerprint

import (
	"encoding/json"
	"sort"
	"strings"
)

// Prefix namespaces fingerprints in shared key-value stores.
const Prefix = "searchKey:"

// canonicalPayload fixes the JSON key order. Struct field order is the
// marshal order, so the emitted string is stable across instances.
type canonicalPayload struct {
	Topic      string   `json:"topic"`
	Tags       []string `json:"tags"`
	TimeRange  string   `json:"timeRange"`
	MinUpvotes int      `json:"minUpvotes"`
	SortBy     string   `json:"sortBy"`
}

// Compute returns the fingerprint for the normalized request tuple.
// Topic is trimmed and lowercased; tags are lowercased and sorted
// ascending; the remaining fields are included verbatim.
func Compute(topic string, tags []string, timeRange string, minUpvotes int, sortBy string) string {
	normTags := make([]string, len(tags))
	for i, t := range tags {
		normTags[i] = strings.ToLower(t)
	}
	sort.Strings(normTags)

	payload := canonicalPayload{
		Topic:      strings.ToLower(strings.TrimSpace(topic)),
		Tags:       normTags,
		TimeRange:  timeRange,
		MinUpvotes: minUpvotes,
		SortBy:     sortBy,
	}

	// Marshal of a struct with string/int/[]string fields cannot fail.
	b, _ := json.Marshal(payload)
	return Prefix + string(b)
}
