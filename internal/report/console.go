package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteConsole prints the human-readable run summary.
func WriteConsole(w io.Writer, doc Document, topN int) {
	fmt.Fprintln(w, "SMO Leave Report")
	fmt.Fprintln(w, strings.Repeat("=", 38))
	fmt.Fprintf(w, "Window: %s to %s (%d months)\n", doc.Metadata.WindowStart, doc.Metadata.WindowEnd, doc.Metadata.MonthsAhead)
	fmt.Fprintf(w, "Day policy: %s\n", doc.Metadata.DayPolicy)
	fmt.Fprintf(w, "Include pending: %v\n", doc.Metadata.IncludePending)
	fmt.Fprintf(w, "Qualifying staff: %d\n", doc.Metadata.StaffCount)
	fmt.Fprintf(w, "Leave records: %d\n", doc.Metadata.RecordCount)
	if doc.Metadata.RowsSkipped > 0 {
		fmt.Fprintf(w, "Rows skipped: %d\n", doc.Metadata.RowsSkipped)
	}

	fmt.Fprintln(w, "\nStaff")
	fmt.Fprintln(w, strings.Repeat("-", 38))
	if len(doc.Staff) == 0 {
		fmt.Fprintln(w, "No qualifying staff found.")
	}
	for _, staff := range doc.Staff {
		fmt.Fprintf(w, "%s | shifts %d | approved %d | pending %d | days %.1f | %s\n",
			staff.FullName, staff.LeaveShifts, staff.ApprovedShifts, staff.PendingShifts,
			staff.TotalLeaveDays, staff.LeaveTypes)
	}

	if topN > 0 && len(doc.Staff) > 0 {
		fmt.Fprintf(w, "\nTop %d by leave days\n", topN)
		fmt.Fprintln(w, strings.Repeat("-", 38))
		for _, staff := range TopByLeaveDays(doc.Staff, topN) {
			fmt.Fprintf(w, "%s | days %.1f\n", staff.FullName, staff.TotalLeaveDays)
		}
	}
}
