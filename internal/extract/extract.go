package extract

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zlodag/leave-planner/internal/roster"
)

// Querier is the slice of database/sql the extractor needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// RunStats counts what one extraction saw. Plain fields: the pipeline is
// single-threaded.
type RunStats struct {
	RowsScanned int
	RowsSkipped int
	Duration    time.Duration
}

type Extractor struct {
	db     Querier
	logger *zap.Logger
}

func New(db Querier, logger *zap.Logger) *Extractor {
	return &Extractor{db: db, logger: logger.Named("extract")}
}

// Run executes the leave query under ctx's deadline and maps every row.
// Rows whose date or time integers fail to decode are logged and skipped;
// any other failure aborts the run.
func (e *Extractor) Run(ctx context.Context, params Params) ([]roster.LeaveRecord, RunStats, error) {
	query, args := BuildLeaveQuery(params)
	started := time.Now()

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, RunStats{}, fmt.Errorf("execute leave query: %w", err)
	}
	defer rows.Close()

	var (
		records []roster.LeaveRecord
		stats   RunStats
	)
	for rows.Next() {
		stats.RowsScanned++

		// Text columns scan as NullString: a missing name or note becomes
		// the empty string, never a fatal scan error.
		var (
			employeeID           int64
			firstName, lastName  sql.NullString
			shiftName            sql.NullString
			startDate, startTime int
			endDate, endTime     int
			status               int
			note                 sql.NullString
		)
		if err := rows.Scan(&employeeID, &firstName, &lastName, &shiftName,
			&startDate, &startTime, &endDate, &endTime, &status, &note); err != nil {
			return nil, stats, fmt.Errorf("scan leave row: %w", err)
		}

		record, err := mapRow(employeeID, firstName.String, lastName.String, shiftName.String,
			startDate, startTime, endDate, endTime, status, note.String)
		if err != nil {
			stats.RowsSkipped++
			e.logger.Warn("skipping undecodable row",
				zap.Int64("employee_id", employeeID),
				zap.String("shift_name", shiftName.String),
				zap.Error(err))
			continue
		}

		// The SQL window predicate works on raw date integers; re-check on
		// the decoded dates so one overlap rule decides inclusion.
		if !params.Window.Overlaps(record.StartDate, record.EndDate) {
			e.logger.Debug("row outside window",
				zap.Int64("employee_id", employeeID),
				zap.Time("start_date", record.StartDate),
				zap.Time("end_date", record.EndDate))
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("stream leave rows: %w", err)
	}

	stats.Duration = time.Since(started)
	return records, stats, nil
}

func mapRow(employeeID int64, firstName, lastName, shiftName string,
	startDate, startTime, endDate, endTime, status int, note string) (roster.LeaveRecord, error) {
	start, err := roster.DecodeDate(startDate)
	if err != nil {
		return roster.LeaveRecord{}, fmt.Errorf("start date: %w", err)
	}
	end, err := roster.DecodeDate(endDate)
	if err != nil {
		return roster.LeaveRecord{}, fmt.Errorf("end date: %w", err)
	}
	startClock, err := roster.DecodeTime(startTime)
	if err != nil {
		return roster.LeaveRecord{}, fmt.Errorf("start time: %w", err)
	}
	endClock, err := roster.DecodeTime(endTime)
	if err != nil {
		return roster.LeaveRecord{}, fmt.Errorf("end time: %w", err)
	}
	startAt, err := roster.CombineDateTime(startDate, startTime)
	if err != nil {
		return roster.LeaveRecord{}, err
	}
	endAt, err := roster.CombineDateTime(endDate, endTime)
	if err != nil {
		return roster.LeaveRecord{}, err
	}

	return roster.LeaveRecord{
		EmployeeID: employeeID,
		FullName:   roster.FullName(firstName, lastName),
		ShiftName:  strings.TrimSpace(shiftName),
		StartDate:  start,
		EndDate:    end,
		StartTime:  startClock,
		EndTime:    endClock,
		Start:      startAt,
		End:        endAt,
		Status:     roster.StatusLabel(status),
		Note:       strings.TrimSpace(note),
	}, nil
}
