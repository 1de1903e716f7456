package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the staff summary as a printable sheet.
func WritePDF(doc Document, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "SMO Leave Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Window: %s to %s", doc.Metadata.WindowStart, doc.Metadata.WindowEnd))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", doc.Metadata.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Qualifying staff: %d, leave records: %d", doc.Metadata.StaffCount, doc.Metadata.RecordCount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Staff")
	pdf.Cell(20, 7, "Shifts")
	pdf.Cell(20, 7, "Days")
	pdf.Cell(80, 7, "Leave types")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, staff := range doc.Staff {
		pdf.Cell(70, 6, staff.FullName)
		pdf.Cell(20, 6, fmt.Sprintf("%d", staff.LeaveShifts))
		pdf.Cell(20, 6, fmt.Sprintf("%.1f", staff.TotalLeaveDays))
		pdf.Cell(80, 6, staff.LeaveTypes)
		pdf.Ln(6)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}
