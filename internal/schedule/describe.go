package schedule

import (
	"strings"

	"github.com/missionctl/missionctl/internal/models"
)

// DefaultDescription is used when a job has no description and its name
// matches no keyword.
const DefaultDescription = "Scheduled automation task"

// keywordDescriptions maps name keywords to canned descriptions. Matching is
// case-insensitive substring on the job name, first match wins, so the order
// here is load-bearing: "sync" must stay ahead of "security" to keep
// historical matches for names containing both.
var keywordDescriptions = []struct {
	keyword string
	text    string
}{
	{"backup", "Backs up agent data and state"},
	{"sync", "Syncs local data with its remote counterpart"},
	{"security", "Reviews recent activity for anything suspicious"},
	{"memory", "Maintains and consolidates memory files"},
	{"digest", "Compiles a digest of recent activity"},
	{"summary", "Summarizes recent sessions"},
	{"report", "Generates a periodic report"},
	{"clean", "Cleans up stale files and old sessions"},
	{"update", "Checks for and applies updates"},
	{"health", "Runs a health check"},
	{"remind", "Sends a scheduled reminder"},
}

// Describe returns the job's own description when it has one, otherwise a
// canned description derived from keywords in its name.
func Describe(job models.CronJob) string {
	if job.Description != "" {
		return job.Description
	}
	name := strings.ToLower(job.Name)
	for _, kd := range keywordDescriptions {
		if strings.Contains(name, kd.keyword) {
			return kd.text
		}
	}
	return DefaultDescription
}

// HandlerLabel shortens a model identifier to the part after the final "/",
// e.g. "anthropic/claude-opus" -> "claude-opus". Strings without a slash
// come back whole.
func HandlerLabel(model string) string {
	if i := strings.LastIndex(model, "/"); i >= 0 {
		return model[i+1:]
	}
	return model
}
