package extract

import (
	"strconv"
	"strings"

	"github.com/zlodag/leave-planner/internal/roster"
)

// Params drive one extraction: the reporting window plus the filter and
// qualification knobs taken from configuration.
type Params struct {
	Window         roster.Window
	IncludePending bool
	LeavePatterns  []string
	SMOMarker      string
	MinSMOShifts   int
}

// BuildLeaveQuery composes the single extraction statement. Every externally
// influenced value is bound as a positional argument, never spliced into the
// SQL text. Shift dates are compared in their stored YYYYMMDD form; the
// overlap test keeps both window bounds inclusive. An empty pattern list
// omits the shift-name filter.
func BuildLeaveQuery(params Params) (string, []any) {
	query := `
    SELECT s.id, s.first_name, s.last_name,
           sh.name, sh.start_date, sh.start_time, sh.end_date, sh.end_time,
           r.status, r.note
    FROM shift_requests r
    JOIN staff s ON r.staff_id = s.id
    JOIN shifts sh ON r.shift_id = sh.id
    WHERE r.blocked = FALSE
      AND sh.start_date <= $1
      AND sh.end_date >= $2
  `
	args := []any{roster.EncodeDate(params.Window.End), roster.EncodeDate(params.Window.Start)}

	query += " AND r.status <> $" + strconv.Itoa(len(args)+1)
	args = append(args, roster.StatusDenied)
	if !params.IncludePending {
		query += " AND r.status = $" + strconv.Itoa(len(args)+1)
		args = append(args, roster.StatusApproved)
	}

	var likes []string
	for _, pattern := range params.LeavePatterns {
		likes = append(likes, "LOWER(sh.name) LIKE $"+strconv.Itoa(len(args)+1))
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(pattern))+"%")
	}
	if len(likes) > 0 {
		query += " AND (" + strings.Join(likes, " OR ") + ")"
	}

	query += `
    AND r.staff_id IN (
      SELECT r2.staff_id
      FROM shift_requests r2
      JOIN shifts sh2 ON r2.shift_id = sh2.id
      WHERE r2.blocked = FALSE
        AND LOWER(sh2.name) LIKE $` + strconv.Itoa(len(args)+1) + `
      GROUP BY r2.staff_id
      HAVING COUNT(*) >= $` + strconv.Itoa(len(args)+2) + `
    )
  `
	args = append(args, "%"+strings.ToLower(strings.TrimSpace(params.SMOMarker))+"%", params.MinSMOShifts)

	query += " ORDER BY s.id, sh.start_date, sh.start_time"
	return query, args
}
