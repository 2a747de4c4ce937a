package report

import (
	"bytes"
	"fmt"
	"time"

	"harshenterprise-backend/utils"

	"github.com/jung-kurt/gofpdf"
)

const reportTitle = "Harsh Enterprise - Visit Report"

// Column order of the exported report, fixed.
var reportColumns = []struct {
	title string
	width float64
}{
	{"Customer", 32},
	{"Employee", 28},
	{"Mobile", 26},
	{"Service", 40},
	{"Charges", 26},
	{"Address", 44},
	{"Next Visit Date", 26},
	{"Visit Time", 20},
	{"Payment Status", 18},
	{"Visit Status", 17},
}

// ReportFileName names the export after the day it was generated:
// Visit_Report_<DD-MM-YYYY>.pdf.
func ReportFileName(now time.Time) string {
	return "Visit_Report_" + now.Format("02-01-2006") + ".pdf"
}

// ExportPDF renders the filtered visit rows as a paginated landscape PDF
// with a repeated header row, a trailing revenue summary and page numbers.
func ExportPDF(rows []Row, totalRevenue float64, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	header := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(52, 58, 64)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range reportColumns {
			pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated on "+now.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	header()

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			header()
			pdf.SetFont("Arial", "", 8)
		}
		cells := []string{
			r.Customer, r.Employee, r.Mobile, r.Service, r.Charges,
			r.Address, r.NextVisitDate, r.VisitTime, r.PaymentStatus, r.VisitStatus,
		}
		for i, col := range reportColumns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Summary row with the filtered total
	pdf.SetFont("Arial", "B", 9)
	var width float64
	for _, col := range reportColumns {
		width += col.width
	}
	pdf.CellFormat(width, 8, "Total Revenue: Rs. "+utils.FormatINR(totalRevenue), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render visit report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
