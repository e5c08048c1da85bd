package models

// Search status values as they appear on the wire (lowercase).
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// HN tag filter values (Algolia tag names).
const (
	TagStory     = "story"
	TagAskHN     = "ask_hn"
	TagShowHN    = "show_hn"
	TagFrontPage = "front_page"
	TagPoll      = "poll"
)

// PreferredTagOrder is the priority used when choosing a story's primary
// tag and when breaking frequency ties during pain-point attribution.
var PreferredTagOrder = []string{TagAskHN, TagShowHN, TagFrontPage, TagPoll, TagStory}

// ValidTags is the accepted tag filter set.
var ValidTags = map[string]bool{
	TagStory:     true,
	TagAskHN:     true,
	TagShowHN:    true,
	TagFrontPage: true,
	TagPoll:      true,
}

// Time range values.
const (
	TimeRangeWeek  = "week"
	TimeRangeMonth = "month"
	TimeRangeYear  = "year"
	TimeRangeAll   = "all"
)

// ValidTimeRanges is the accepted time range set.
var ValidTimeRanges = map[string]bool{
	TimeRangeWeek:  true,
	TimeRangeMonth: true,
	TimeRangeYear:  true,
	TimeRangeAll:   true,
}

// Sort order values.
const (
	SortByRelevance = "relevance"
	SortByUpvotes   = "upvotes"
	SortByRecency   = "recency"
)

// ValidSortBys is the accepted sort order set.
var ValidSortBys = map[string]bool{
	SortByRelevance: true,
	SortByUpvotes:   true,
	SortByRecency:   true,
}

// TagPriority returns the preference rank of a tag (lower is preferred).
// Unknown tags rank last.
func TagPriority(tag string) int {
	for i, t := range PreferredTagOrder {
		if t == tag {
			return i
		}
	}
	return len(PreferredTagOrder)
}

// PrimaryTag picks a story's primary tag: the first preferred tag present
// in the story's tag list, defaulting to "story".
func PrimaryTag(tags []string) string {
	present := make(map[string]bool, len(tags))
	for _, t := range tags {
		present[t] = true
	}
	for _, t := range PreferredTagOrder {
		if present[t] {
			return t
		}
	}
	return TagStory
}
