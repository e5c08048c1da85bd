package events

// Envelope is the wire shape of every progress event. The same JSON is
// stored in search_events.payload, delivered via NOTIFY (with db_event_id
// injected), and replayed by catch-up, so the three paths never diverge.
type Envelope struct {
	ID        string `json:"id"` // event UUID (client dedup key)
	SearchID  string `json:"search_id"`
	Phase     string `json:"phase"`      // stories, comments, analysis
	EventType string `json:"event_type"` // story_discovered, comment_discovered, ...
	Payload   any    `json:"payload"`
	CreatedAt string `json:"created_at"` // RFC3339Nano
}

// StoryDiscoveredPayload is the payload for story_discovered events.
// Published once per story accepted during the stories phase.
type StoryDiscoveredPayload struct {
	StoryID     string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Points      int    `json:"points"`
	NumComments int    `json:"numComments"`
	Tag         string `json:"tag"`       // primary tag (ask_hn, show_hn, ...)
	CreatedAt   string `json:"createdAt"` // story submission time, RFC3339
}

// CommentSnippet is one comment in a phase_progress batch. The snippet is
// display-truncated; the full text only feeds the analyzer.
type CommentSnippet struct {
	CommentID string `json:"id"`
	Snippet   string `json:"snippet"`
	Author    string `json:"author,omitempty"`
	Upvotes   int    `json:"upvotes"`
	Permalink string `json:"permalink"`
}

// PhaseProgressPayload is the payload for phase_progress events.
// Published at phase boundaries and, during the comments phase, once per
// story fetch with the kept comments batched in.
type PhaseProgressPayload struct {
	Current            int              `json:"current"`
	Total              int              `json:"total"`
	Message            string           `json:"message,omitempty"`
	TotalCommentsSoFar int              `json:"totalCommentsSoFar,omitempty"`
	Comments           []CommentSnippet `json:"comments,omitempty"`
}

// SearchStatusPayload is the payload for search_status events.
// Published when a search transitions between lifecycle states.
type SearchStatusPayload struct {
	Status       string `json:"status"` // pending, processing, completed, failed
	ErrorMessage string `json:"errorMessage,omitempty"`
}
