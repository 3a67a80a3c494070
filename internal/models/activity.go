package models

// Activity entry types as produced by the data generator.
const (
	ActivityTool    = "tool"
	ActivityMessage = "message"
	ActivityCron    = "cron"
)

// ActivityEntry is one item in the agent activity feed. Entries are loaded
// once per process and are immutable afterwards; the generator emits them
// newest first and that order is preserved everywhere.
type ActivityEntry struct {
	Timestamp Timestamp `json:"timestamp"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Session   string    `json:"session,omitempty"`
}
