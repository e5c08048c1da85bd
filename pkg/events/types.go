// Package events provides real-time progress delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every progress event is persisted to the search_events table and
// broadcast in the same transaction, so a client that connects late (or
// reconnects) can replay the full stream via catch-up. The serial row id
// (db_event_id on the wire) orders replays; the envelope id UUID lets
// clients drop duplicates when live delivery and catch-up overlap.
package events

// Event types, as stored in search_events.event_type and sent on the wire.
const (
	// Stories phase: one per accepted story.
	EventTypeStoryDiscovered = "story_discovered"

	// Reserved for per-comment delivery; the pipeline currently batches
	// kept comments into phase_progress events instead.
	EventTypeCommentDiscovered = "comment_discovered"

	// Coarse progress within a phase (e.g. "12/20 stories").
	EventTypePhaseProgress = "phase_progress"

	// Search lifecycle transitions (processing, completed, failed).
	EventTypeSearchStatus = "search_status"
)

// Pipeline phases (the search_events.phase column and envelope field).
const (
	PhaseStories  = "stories"
	PhaseComments = "comments"
	PhaseAnalysis = "analysis"
)

// GlobalSearchesChannel carries transient search_status copies for
// dashboard-style subscribers that watch all searches.
const GlobalSearchesChannel = "searches"

// SearchChannel returns the channel name for a specific search's events.
// Format: "search:{search_id}"
func SearchChannel(searchID string) string {
	return "search:" + searchID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "search:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
