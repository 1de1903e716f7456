package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlodag/leave-planner/internal/extract"
	"github.com/zlodag/leave-planner/internal/roster"
)

func fixtureInput(records []roster.LeaveRecord) BuildInput {
	return BuildInput{
		Source: "radiology-roster",
		Params: extract.Params{
			Window:         roster.NewWindow(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 6),
			IncludePending: true,
			LeavePatterns:  []string{"annual leave"},
			SMOMarker:      "smo",
			MinSMOShifts:   4,
		},
		MonthsAhead: 6,
		Policy:      CalendarPolicy{},
		Records:     records,
		Stats:       extract.RunStats{RowsScanned: len(records), Duration: 120 * time.Millisecond},
		GeneratedAt: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildMetadata(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	records := []roster.LeaveRecord{
		leaveShift(101, "Annual Leave AM", day, "Approved"),
		leaveShift(101, "Annual Leave PM", day, "Approved"),
	}

	doc := Build(fixtureInput(records))

	assert.NotEmpty(t, doc.Metadata.RunID)
	assert.Equal(t, "radiology-roster", doc.Metadata.Source)
	assert.Equal(t, "2025-03-15", doc.Metadata.WindowStart)
	assert.Equal(t, "2025-09-15", doc.Metadata.WindowEnd)
	assert.Equal(t, "calendar", doc.Metadata.DayPolicy)
	assert.Equal(t, 1, doc.Metadata.StaffCount)
	assert.Equal(t, 2, doc.Metadata.RecordCount)
	assert.Equal(t, int64(120), doc.Metadata.DurationMs)
}

func TestBuildEmptyRun(t *testing.T) {
	doc := Build(fixtureInput(nil))

	assert.Equal(t, 0, doc.Metadata.StaffCount)
	assert.Equal(t, 0, doc.Metadata.RecordCount)
	require.NotNil(t, doc.Staff)
	require.NotNil(t, doc.Records)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"staff":[]`)
	assert.Contains(t, string(data), `"records":[]`)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	doc := Build(fixtureInput([]roster.LeaveRecord{
		leaveShift(101, "Annual Leave AM", day, "Approved"),
	}))

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.Metadata.RunID, decoded.Metadata.RunID)
	assert.Equal(t, doc.Staff, decoded.Staff)
	assert.Len(t, decoded.Records, 1)
	assert.Equal(t, "Smith, Alice", decoded.Records[0].FullName)
}

func TestWriteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	require.NoError(t, WriteJSON(Build(fixtureInput(nil)), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), `"run_id"`)
}
