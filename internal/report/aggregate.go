package report

import (
	"sort"
	"strings"

	"github.com/zlodag/leave-planner/internal/roster"
)

// StaffSummary is one qualifying staff member's aggregate line.
type StaffSummary struct {
	EmployeeID     int64          `json:"employee_id"`
	FullName       string         `json:"full_name"`
	LeaveShifts    int            `json:"leave_shifts"`
	ApprovedShifts int            `json:"approved_shifts"`
	PendingShifts  int            `json:"pending_shifts"`
	StatusCounts   map[string]int `json:"status_counts"`
	LeaveTypes     string         `json:"leave_types"`
	TotalLeaveDays float64        `json:"total_leave_days"`
}

// Aggregate groups records by employee, preserving first-seen order and
// first-seen display name, and totals leave days under the given policy.
// Every employee in records appears in exactly one summary.
func Aggregate(records []roster.LeaveRecord, policy DayPolicy) []StaffSummary {
	var order []int64
	grouped := make(map[int64][]roster.LeaveRecord)
	for _, record := range records {
		if _, seen := grouped[record.EmployeeID]; !seen {
			order = append(order, record.EmployeeID)
		}
		grouped[record.EmployeeID] = append(grouped[record.EmployeeID], record)
	}

	summaries := make([]StaffSummary, 0, len(order))
	for _, employeeID := range order {
		group := grouped[employeeID]

		summary := StaffSummary{
			EmployeeID:   employeeID,
			FullName:     group[0].FullName,
			LeaveShifts:  len(group),
			StatusCounts: make(map[string]int),
		}

		var leaveTypes []string
		seenTypes := make(map[string]bool)
		for _, record := range group {
			summary.StatusCounts[record.Status]++
			if !seenTypes[record.ShiftName] {
				seenTypes[record.ShiftName] = true
				leaveTypes = append(leaveTypes, record.ShiftName)
			}
		}
		summary.ApprovedShifts = summary.StatusCounts["Approved"]
		summary.PendingShifts = summary.StatusCounts["Pending"]
		summary.LeaveTypes = strings.Join(leaveTypes, ", ")
		summary.TotalLeaveDays = policy.LeaveDays(group).InexactFloat64()

		summaries = append(summaries, summary)
	}
	return summaries
}

// TopByLeaveDays returns the n heaviest leave takers, descending; ties keep
// their aggregation order. A negative n returns an empty slice.
func TopByLeaveDays(summaries []StaffSummary, n int) []StaffSummary {
	if n < 0 {
		n = 0
	}
	top := make([]StaffSummary, len(summaries))
	copy(top, summaries)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalLeaveDays > top[j].TotalLeaveDays
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}
