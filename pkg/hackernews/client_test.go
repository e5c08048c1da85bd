package hackernews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painscope/painscope/pkg/models"
)

func TestSearch_QueryConstruction(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"hits":[]}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), SearchParams{
		Query:       "docker",
		Tags:        []string{"ask_hn", "show_hn"},
		TimeRange:   models.TimeRangeWeek,
		MinPoints:   25,
		SortBy:      models.SortByRelevance,
		Page:        2,
		HitsPerPage: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "docker", gotQuery.Get("query"))
	assert.Equal(t, "(ask_hn,show_hn)", gotQuery.Get("tags"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "30", gotQuery.Get("hitsPerPage"))
	assert.Contains(t, gotQuery.Get("numericFilters"), "points>=25")
	assert.Contains(t, gotQuery.Get("numericFilters"), "created_at_i>=")
}

func TestSearch_RecencyUsesSearchByDate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"hits":[]}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), SearchParams{Query: "x", SortBy: models.SortByRecency})
	require.NoError(t, err)
	assert.Equal(t, "/search_by_date", gotPath)
}

func TestSearch_NormalizesHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hits":[
			{"objectID":"100","title":"Ask HN: Why is DNS so hard?","story_text":"<p>It always &amp; breaks</p>","points":42,"author":"alice","created_at_i":1700000000,"_tags":["story","ask_hn"],"num_comments":17},
			{"objectID":"101","title":"","points":5}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	stories, err := c.Search(context.Background(), SearchParams{Query: "dns"})
	require.NoError(t, err)

	// The title-less hit is dropped.
	require.Len(t, stories, 1)
	s := stories[0]
	assert.Equal(t, "100", s.ID)
	assert.Equal(t, "It always & breaks", s.Text)
	assert.Equal(t, "https://news.ycombinator.com/item?id=100", s.Permalink)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), s.CreatedAt)
	assert.Equal(t, 17, s.NumComments)
}

func TestComments_FlattenStripSort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/100", r.URL.Path)
		fmt.Fprint(w, `{
			"id":100,
			"children":[
				{"id":1,"author":"bob","text":"<p>low</p>","points":1,"created_at_i":1,"children":[
					{"id":2,"author":"carol","text":"nested &quot;high&quot;","points":9,"created_at_i":2,"children":[]}
				]},
				{"id":3,"author":"dave","text":"","points":100,"created_at_i":3,"children":[]},
				{"id":4,"author":"erin","text":"mid","points":5,"created_at_i":4,"children":[]}
			]
		}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	comments, err := c.Comments(context.Background(), "100")
	require.NoError(t, err)

	// Empty-text comment dropped; rest sorted by points descending.
	require.Len(t, comments, 3)
	assert.Equal(t, []string{"2", "4", "1"}, []string{comments[0].ID, comments[1].ID, comments[2].ID})
	assert.Equal(t, `nested "high"`, comments[0].Text)
	assert.Equal(t, "100", comments[0].StoryID)
	assert.Equal(t, "1", comments[0].ParentID)
	assert.Equal(t, "https://news.ycombinator.com/item?id=2", comments[0].Permalink)
}

func TestGetJSON_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), SearchParams{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestTimeRangeCutoff(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	cutoff, ok := timeRangeCutoff(models.TimeRangeWeek, now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7), cutoff)

	_, ok = timeRangeCutoff(models.TimeRangeAll, now)
	assert.False(t, ok)
}
