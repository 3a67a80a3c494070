package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSchedule(t *testing.T, raw string) Schedule {
	t.Helper()
	var s Schedule
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestSchedule_StructuredCron(t *testing.T) {
	s := decodeSchedule(t, `{"kind":"cron","expr":"0 9 * * *","tz":"UTC"}`)
	assert.Equal(t, ScheduleCron, s.Kind)
	assert.Equal(t, "0 9 * * *", s.Expr)
	assert.Equal(t, "UTC", s.TZ)
	assert.True(t, s.IsRecurring())
}

func TestSchedule_StructuredEvery(t *testing.T) {
	s := decodeSchedule(t, `{"kind":"every","everyMs":1800000}`)
	assert.Equal(t, ScheduleEvery, s.Kind)
	assert.Equal(t, int64(1800000), s.EveryMs)
	assert.True(t, s.IsRecurring())
}

func TestSchedule_StructuredAt(t *testing.T) {
	s := decodeSchedule(t, `{"kind":"at","at":1767225600000}`)
	assert.Equal(t, ScheduleAt, s.Kind)
	assert.Equal(t, time.UnixMilli(1767225600000), s.At)
	assert.False(t, s.IsRecurring())

	s = decodeSchedule(t, `{"kind":"at","at":"2026-09-01T10:00:00Z"}`)
	assert.Equal(t, ScheduleAt, s.Kind)
	assert.False(t, s.At.IsZero())

	s = decodeSchedule(t, `{"kind":"at"}`)
	assert.Equal(t, ScheduleAt, s.Kind)
	assert.True(t, s.At.IsZero())
}

func TestSchedule_UnknownKindKeepsJSON(t *testing.T) {
	s := decodeSchedule(t, `{"kind":"lunar","phase":"full"}`)
	assert.Equal(t, ScheduleRaw, s.Kind)
	assert.Contains(t, s.Raw, `"kind":"lunar"`)
	assert.Contains(t, s.Raw, `"phase":"full"`)
}

func TestSchedule_LegacyEvery(t *testing.T) {
	tests := []struct {
		raw    string
		wantMs int64
	}{
		{`"every 30m"`, 30 * 60 * 1000},
		{`"every 2h"`, 2 * 60 * 60 * 1000},
		{`"every 1d"`, 24 * 60 * 60 * 1000},
	}
	for _, tt := range tests {
		s := decodeSchedule(t, tt.raw)
		assert.Equal(t, ScheduleEvery, s.Kind, tt.raw)
		assert.Equal(t, tt.wantMs, s.EveryMs, tt.raw)
	}
}

func TestSchedule_LegacyEveryUnparsable(t *testing.T) {
	s := decodeSchedule(t, `"every so often"`)
	assert.Equal(t, ScheduleRaw, s.Kind)
	assert.Equal(t, "every so often", s.Raw)
}

func TestSchedule_LegacyAt(t *testing.T) {
	s := decodeSchedule(t, `"at 2026-09-01T10:00:00Z"`)
	assert.Equal(t, ScheduleAt, s.Kind)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), s.At)
}

func TestSchedule_LegacyCron(t *testing.T) {
	s := decodeSchedule(t, `"cron 0 9 * * *"`)
	assert.Equal(t, ScheduleCron, s.Kind)
	assert.Equal(t, "0 9 * * *", s.Expr)
	assert.Empty(t, s.TZ)
}

func TestSchedule_LegacyCronDropsTimezoneAnnotation(t *testing.T) {
	s := decodeSchedule(t, `"cron 0 9 * * * @ America/New_York"`)
	assert.Equal(t, ScheduleCron, s.Kind)
	assert.Equal(t, "0 9 * * *", s.Expr)
	assert.Empty(t, s.TZ)
}

func TestSchedule_UnrecognizedStringPassesThrough(t *testing.T) {
	s := decodeSchedule(t, `"whenever the mood strikes"`)
	assert.Equal(t, ScheduleRaw, s.Kind)
	assert.Equal(t, "whenever the mood strikes", s.Raw)
}

func TestSchedule_AbsentAndNull(t *testing.T) {
	assert.Equal(t, ScheduleNone, decodeSchedule(t, `null`).Kind)
	assert.Equal(t, ScheduleNone, decodeSchedule(t, `""`).Kind)
}

func TestTimestamp_Formats(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-30T12:00:00Z"`), &ts))
	assert.False(t, ts.IsZero())

	// Python isoformat without a zone offset.
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-30T12:00:00.123456"`), &ts))
	assert.False(t, ts.IsZero())
	assert.Equal(t, 2026, ts.Year())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"-"`), &ts))
	assert.True(t, ts.IsZero())

	// Garbage degrades to zero rather than erroring the document.
	require.NoError(t, json.Unmarshal([]byte(`"soon"`), &ts))
	assert.True(t, ts.IsZero())
}

func TestCronJob_Decode(t *testing.T) {
	raw := `{
		"id": "job_1",
		"name": "Morning digest",
		"schedule": {"kind": "cron", "expr": "30 8 * * *", "tz": "UTC"},
		"nextRuns": ["2026-08-31T08:30:00Z", "2026-09-01T08:30:00Z"],
		"lastRun": "2026-08-30T08:30:00Z",
		"model": "anthropic/claude-opus",
		"status": "ok"
	}`
	var job CronJob
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "job_1", job.ID)
	assert.Equal(t, ScheduleCron, job.Schedule.Kind)
	require.Len(t, job.NextRuns, 2)
	assert.Equal(t, job.NextRuns[0].Time, job.NextRun())
	assert.False(t, job.LastRun.IsZero())
}

func TestCronJob_NextRunEmpty(t *testing.T) {
	var job CronJob
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","name":"y","nextRuns":[]}`), &job))
	assert.True(t, job.NextRun().IsZero())
	assert.Equal(t, ScheduleNone, job.Schedule.Kind)
}
