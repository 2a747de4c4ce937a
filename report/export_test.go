package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []Row {
	return []Row{
		{
			Customer: "Asha Traders", Employee: "Sanjay", Mobile: "+919876543210",
			Service: "Filter replacement", Charges: "Rs. 1,250.50",
			Address: "14 MG Road, Pune", NextVisitDate: "01/09/2024",
			VisitTime: "10:30", PaymentStatus: "Paid", VisitStatus: "Pending",
		},
		{
			Customer: "Ravi Kumar", Employee: "Deepak", Mobile: "+919812345678",
			Service: "Annual service", Charges: "Rs. 800.00",
			Address: "7 Station Road, Nashik", NextVisitDate: "15/08/2024",
			VisitTime: "14:00", PaymentStatus: "Pending", VisitStatus: "Done",
		},
	}
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Visit_Report_05-06-2024.pdf", ReportFileName(now))
	assert.Equal(t, "Visit_Report_05-06-2024.xlsx", ExcelFileName(now))
}

func TestExportPDF(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	out, err := ExportPDF(sampleRows(), 2050.50, now)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportPDFEmpty(t *testing.T) {
	out, err := ExportPDF(nil, 0, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportPDFManyRowsPaginates(t *testing.T) {
	rows := make([]Row, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, sampleRows()[i%2])
	}

	out, err := ExportPDF(rows, 123456.78, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestExportExcel(t *testing.T) {
	out, err := ExportExcel(sampleRows(), 2050.50)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(out, []byte("PK")))
}
