package laborhandler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jung-kurt/gofpdf"
)

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	entries, from, to, ok := h.exportRows(w, r)
	if !ok {
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Reconciled Timesheet")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 7, "Employee", "1", 0, "", false, 0, "")
	pdf.CellFormat(28, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(20, 7, "Hours", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 7, "Project", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Source", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	var totalHours float64
	for _, entry := range entries {
		pdf.CellFormat(45, 7, entry.EmployeeID, "1", 0, "", false, 0, "")
		pdf.CellFormat(28, 7, entry.EntryDate.Format("2006-01-02"), "1", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.1f", entry.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, entry.Status, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 7, entry.ProjectID, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, entry.Source, "1", 1, "", false, 0, "")
		totalHours += entry.Hours
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(73, 7, "Total", "1", 0, "", false, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%.1f", totalHours), "1", 0, "R", false, 0, "")
	pdf.CellFormat(95, 7, "", "1", 1, "", false, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=timesheet.pdf")
	if err := pdf.Output(w); err != nil {
		log.Printf("timesheet pdf write failed: %v", err)
	}
}
