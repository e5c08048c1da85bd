// Package hackernews provides the news source port and its Algolia-backed
// Hacker News implementation.
package hackernews

import (
	"context"
	"time"
)

// Story is a normalized HN submission.
type Story struct {
	ID          string
	Title       string
	URL         string
	Permalink   string
	Text        string
	Points      int
	Author      string
	CreatedAt   time.Time
	Tags        []string
	NumComments int
}

// Comment is a normalized HN comment with plain-text body.
type Comment struct {
	ID        string
	Text      string
	Points    int
	Author    string
	CreatedAt time.Time
	StoryID   string
	ParentID  string
	Permalink string
}

// SearchParams filters one page of a story search.
type SearchParams struct {
	Query       string
	Tags        []string // Algolia tag names; empty means all stories
	TimeRange   string   // week, month, year, all
	MinPoints   int
	SortBy      string // relevance, upvotes, recency
	Page        int
	HitsPerPage int
}

// NewsSource is the port the pipeline scrapes through.
type NewsSource interface {
	Search(ctx context.Context, params SearchParams) ([]Story, error)
	Comments(ctx context.Context, storyID string) ([]Comment, error)
}
