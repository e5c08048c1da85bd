// Package models defines the wire-level request and result shapes shared
// by the API, the cache, and the pipeline.
package models

import "github.com/painscope/painscope/pkg/analyzer"

// SearchResult is the canonical completed payload: stored in the cache
// under both the search id and fingerprint keys, and returned by intake
// and status lookups on hits.
type SearchResult struct {
	SearchID   string   `json:"searchId"`
	Status     string   `json:"status"`
	Topic      string   `json:"topic"`
	Tags       []string `json:"tags"`
	TimeRange  string   `json:"timeRange"`
	MinUpvotes int      `json:"minUpvotes"`
	SortBy     string   `json:"sortBy"`

	TotalMentions           int      `json:"totalMentions"`
	TotalPostsConsidered    int      `json:"totalPostsConsidered"`
	TotalCommentsConsidered int      `json:"totalCommentsConsidered"`
	SourceTags              []string `json:"sourceTags"`

	PainPoints []PainPoint `json:"painPoints"`
	Quotes     []Quote     `json:"quotes"`
	Analysis   *Analysis   `json:"analysis"`
}

// PainPoint is the wire shape of one persisted pain point.
type PainPoint struct {
	ID            string   `json:"id"`
	SearchID      string   `json:"searchId"`
	Title         string   `json:"title"`
	SourceTag     string   `json:"sourceTag"`
	MentionsCount int      `json:"mentionsCount"`
	SeverityScore *float64 `json:"severityScore,omitempty"`
}

// Quote is the wire shape of one persisted quote.
type Quote struct {
	ID           string  `json:"id"`
	PainPointID  string  `json:"painPointId"`
	QuoteText    string  `json:"quoteText"`
	AuthorHandle *string `json:"authorHandle,omitempty"`
	Upvotes      int     `json:"upvotes"`
	Permalink    string  `json:"permalink"`
}

// Analysis is the wire shape of the persisted analyzer output.
type Analysis struct {
	Summary         string                    `json:"summary"`
	ProblemClusters []analyzer.ProblemCluster `json:"problemClusters"`
	ProductIdeas    []analyzer.ProductIdea    `json:"productIdeas"`
	Model           string                    `json:"model,omitempty"`
	TokensUsed      int                       `json:"tokensUsed,omitempty"`
}

// SearchStatus is the non-completed status lookup response.
type SearchStatus struct {
	SearchID     string `json:"searchId"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
