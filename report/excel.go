package report

import (
	"bytes"
	"fmt"
	"time"

	"harshenterprise-backend/utils"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Visit Report"

// ExcelFileName mirrors ReportFileName for the spreadsheet export.
func ExcelFileName(now time.Time) string {
	return "Visit_Report_" + now.Format("02-01-2006") + ".xlsx"
}

// ExportExcel writes the filtered visit rows to a spreadsheet with the same
// column order as the PDF export and a trailing revenue summary row.
func ExportExcel(rows []Row, totalRevenue float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"343A40"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, c := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, c.title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(reportSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		values := []string{
			r.Customer, r.Employee, r.Mobile, r.Service, r.Charges,
			r.Address, r.NextVisitDate, r.VisitTime, r.PaymentStatus, r.VisitStatus,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	summaryCell, err := excelize.CoordinatesToCellName(1, len(rows)+2)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(reportSheet, summaryCell,
		"Total Revenue: Rs. "+utils.FormatINR(totalRevenue)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
