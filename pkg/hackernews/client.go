package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/painscope/painscope/pkg/htmltext"
	"github.com/painscope/painscope/pkg/models"
)

// DefaultBaseURL is the public Algolia HN search API.
const DefaultBaseURL = "https://hn.algolia.com/api/v1"

// itemPermalink builds the canonical news.ycombinator.com link for an item.
func itemPermalink(id string) string {
	return "https://news.ycombinator.com/item?id=" + id
}

// Client is an Algolia-backed NewsSource.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests point this at a stub).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates an Algolia HN client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// algoliaHit is the raw search hit shape.
type algoliaHit struct {
	ObjectID    string   `json:"objectID"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	StoryText   string   `json:"story_text"`
	Points      int      `json:"points"`
	Author      string   `json:"author"`
	CreatedAtI  int64    `json:"created_at_i"`
	Tags        []string `json:"_tags"`
	NumComments int      `json:"num_comments"`
}

type algoliaSearchResponse struct {
	Hits []algoliaHit `json:"hits"`
}

// algoliaItem is the raw /items/{id} shape; children nest recursively.
type algoliaItem struct {
	ID         int64         `json:"id"`
	Author     string        `json:"author"`
	Text       string        `json:"text"`
	Points     *int          `json:"points"`
	CreatedAtI int64         `json:"created_at_i"`
	ParentID   *int64        `json:"parent_id"`
	StoryID    *int64        `json:"story_id"`
	Children   []algoliaItem `json:"children"`
}

// Search fetches one page of stories matching params.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]Story, error) {
	endpoint := "/search"
	if params.SortBy == models.SortByRecency {
		endpoint = "/search_by_date"
	}

	q := url.Values{}
	q.Set("query", params.Query)
	if params.HitsPerPage > 0 {
		q.Set("hitsPerPage", fmt.Sprintf("%d", params.HitsPerPage))
	}
	if params.Page > 0 {
		q.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if len(params.Tags) > 0 {
		// Parenthesized tag list means OR in the Algolia API.
		q.Set("tags", "("+strings.Join(params.Tags, ",")+")")
	} else {
		q.Set("tags", "story")
	}
	if filters := numericFilters(params, time.Now()); filters != "" {
		q.Set("numericFilters", filters)
	}

	var resp algoliaSearchResponse
	if err := c.getJSON(ctx, endpoint+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	stories := make([]Story, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if hit.Title == "" {
			continue
		}
		stories = append(stories, Story{
			ID:          hit.ObjectID,
			Title:       hit.Title,
			URL:         hit.URL,
			Permalink:   itemPermalink(hit.ObjectID),
			Text:        htmltext.Strip(hit.StoryText),
			Points:      hit.Points,
			Author:      hit.Author,
			CreatedAt:   time.Unix(hit.CreatedAtI, 0).UTC(),
			Tags:        hit.Tags,
			NumComments: hit.NumComments,
		})
	}
	return stories, nil
}

// Comments fetches a story's comment tree and flattens it. Only comments
// with non-empty stripped text are kept; the result is sorted by points
// descending.
func (c *Client) Comments(ctx context.Context, storyID string) ([]Comment, error) {
	var item algoliaItem
	if err := c.getJSON(ctx, "/items/"+url.PathEscape(storyID), &item); err != nil {
		return nil, err
	}

	var comments []Comment
	var walk func(nodes []algoliaItem, parentID string)
	walk = func(nodes []algoliaItem, parentID string) {
		for _, n := range nodes {
			text := htmltext.Strip(n.Text)
			id := fmt.Sprintf("%d", n.ID)
			if text != "" {
				points := 0
				if n.Points != nil {
					points = *n.Points
				}
				comments = append(comments, Comment{
					ID:        id,
					Text:      text,
					Points:    points,
					Author:    n.Author,
					CreatedAt: time.Unix(n.CreatedAtI, 0).UTC(),
					StoryID:   storyID,
					ParentID:  parentID,
					Permalink: itemPermalink(id),
				})
			}
			walk(n.Children, id)
		}
	}
	walk(item.Children, storyID)

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Points > comments[j].Points
	})
	return comments, nil
}

// numericFilters renders the points and created_at constraints.
func numericFilters(params SearchParams, now time.Time) string {
	var filters []string
	if params.MinPoints > 0 {
		filters = append(filters, fmt.Sprintf("points>=%d", params.MinPoints))
	}
	if cutoff, ok := timeRangeCutoff(params.TimeRange, now); ok {
		filters = append(filters, fmt.Sprintf("created_at_i>=%d", cutoff.Unix()))
	}
	return strings.Join(filters, ",")
}

// timeRangeCutoff maps a time range to its lower bound; "all" has none.
func timeRangeCutoff(timeRange string, now time.Time) (time.Time, bool) {
	switch timeRange {
	case models.TimeRangeWeek:
		return now.AddDate(0, 0, -7), true
	case models.TimeRangeMonth:
		return now.AddDate(0, -1, 0), true
	case models.TimeRangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// getJSON issues a GET and decodes the JSON body. Non-2xx responses are
// returned as errors so the pipeline's failure classifier can see them.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hn request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hn request returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode hn response: %w", err)
	}
	return nil
}
