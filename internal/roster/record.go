package roster

import (
	"strings"
	"time"
)

// LeaveRecord is one leave shift assignment, normalized from the raw
// rostering row. Immutable once mapped; lives for a single run.
type LeaveRecord struct {
	EmployeeID int64     `json:"employee_id"`
	FullName   string    `json:"full_name"`
	ShiftName  string    `json:"shift_name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
}

// FullName joins the name parts as "Last, First", tolerating blanks.
func FullName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if last == "" {
		return first
	}
	if first == "" {
		return last
	}
	return last + ", " + first
}
