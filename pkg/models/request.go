package models

// SearchRequest is the intake payload for a new pain-point search.
// Validation happens in the service layer so non-HTTP callers get the
// same rules.
type SearchRequest struct {
	Topic      string   `json:"topic"`
	Tags       []string `json:"tags"`
	TimeRange  string   `json:"timeRange"`
	MinUpvotes int      `json:"minUpvotes"`
	SortBy     string   `json:"sortBy"`
}

// Normalized returns a copy with defaults applied. Topic trimming and tag
// case-folding are left to validation and fingerprinting respectively.
func (r SearchRequest) Normalized() SearchRequest {
	out := r
	if out.TimeRange == "" {
		out.TimeRange = TimeRangeMonth
	}
	if out.SortBy == "" {
		out.SortBy = SortByRelevance
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}
