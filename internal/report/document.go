package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/zlodag/leave-planner/internal/extract"
	"github.com/zlodag/leave-planner/internal/roster"
)

// Metadata describes one extraction run: when it ran, what it filtered on,
// and what it found.
type Metadata struct {
	RunID          string    `json:"run_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	Source         string    `json:"source"`
	WindowStart    string    `json:"window_start"`
	WindowEnd      string    `json:"window_end"`
	MonthsAhead    int       `json:"months_ahead"`
	IncludePending bool      `json:"include_pending"`
	LeavePatterns  []string  `json:"leave_patterns"`
	SMOMarker      string    `json:"smo_marker"`
	MinSMOShifts   int       `json:"min_smo_shifts"`
	DayPolicy      string    `json:"day_policy"`
	StaffCount     int       `json:"staff_count"`
	RecordCount    int       `json:"record_count"`
	RowsSkipped    int       `json:"rows_skipped"`
	DurationMs     int64     `json:"duration_ms"`
}

// Document is the artifact consumed by downstream roster tools.
type Document struct {
	Metadata Metadata             `json:"metadata"`
	Staff    []StaffSummary       `json:"staff"`
	Records  []roster.LeaveRecord `json:"records"`
}

// BuildInput carries everything the document assembly needs.
type BuildInput struct {
	Source      string
	Params      extract.Params
	MonthsAhead int
	Policy      DayPolicy
	Records     []roster.LeaveRecord
	Stats       extract.RunStats
	GeneratedAt time.Time
}

// Build aggregates the records and assembles the output document. Both
// sequences are non-nil so an empty run serializes as empty arrays.
func Build(input BuildInput) Document {
	staff := Aggregate(input.Records, input.Policy)
	records := input.Records
	if records == nil {
		records = []roster.LeaveRecord{}
	}

	return Document{
		Metadata: Metadata{
			RunID:          uuid.NewString(),
			GeneratedAt:    input.GeneratedAt,
			Source:         input.Source,
			WindowStart:    input.Params.Window.Start.Format("2006-01-02"),
			WindowEnd:      input.Params.Window.End.Format("2006-01-02"),
			MonthsAhead:    input.MonthsAhead,
			IncludePending: input.Params.IncludePending,
			LeavePatterns:  input.Params.LeavePatterns,
			SMOMarker:      input.Params.SMOMarker,
			MinSMOShifts:   input.Params.MinSMOShifts,
			DayPolicy:      input.Policy.Name(),
			StaffCount:     len(staff),
			RecordCount:    len(records),
			RowsSkipped:    input.Stats.RowsSkipped,
			DurationMs:     input.Stats.Duration.Milliseconds(),
		},
		Staff:   staff,
		Records: records,
	}
}
