package report

import (
	"bytes"
	"fmt"
	"time"

	"harshenterprise-backend/models"
	"harshenterprise-backend/utils"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	businessName    = "Harsh Enterprise"
	businessContact = "123 Service Lane, Industrial Area | +91-9876543210 | harsh@enterprise.com"
)

// RenderInvoicePDF formats a single visit as a printable invoice: business
// header, customer block, one line item (qty 1) priced at the service
// charge, and a total equal to the charge.
func RenderInvoicePDF(visit models.Visit, invoiceNo string, now time.Time) ([]byte, error) {
	charge := decimal.NewFromFloat(visit.ServiceCharges)
	total := charge.Mul(decimal.NewFromInt(1))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Business header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, businessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, businessContact, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	// Customer block on the left, date and invoice number on the right
	pdf.SetFont("Arial", "", 11)
	y := pdf.GetY()
	pdf.CellFormat(95, 6, "Customer: "+visit.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Address: "+visit.ServiceAddress, "", 1, "L", false, 0, "")
	leftEnd := pdf.GetY()

	pdf.SetXY(115, y)
	pdf.CellFormat(85, 6, "Date: "+now.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.SetX(115)
	if invoiceNo == "" {
		invoiceNo = "-"
	}
	pdf.CellFormat(85, 6, "Invoice No: "+invoiceNo, "", 1, "L", false, 0, "")
	if pdf.GetY() < leftEnd {
		pdf.SetY(leftEnd)
	}
	pdf.Ln(6)

	// Line item table
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Rate (Rs.)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Total (Rs.)", "1", 1, "R", true, 0, "")

	chargeStr := utils.FormatINR(visit.ServiceCharges)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(90, 8, visit.ServiceDescription, "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "1", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, chargeStr, "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, chargeStr, "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Totals and payment status
	totalF, _ := total.Round(2).Float64()
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "Total: Rs. "+utils.FormatINR(totalF), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, "Payment Status: "+visit.PaymentStatus, "", 1, "R", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Thank you for choosing %s!", businessName), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
