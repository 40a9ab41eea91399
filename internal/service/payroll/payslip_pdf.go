package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/medishift/clinic-backend-go/internal/domain/payroll"
)

// RenderPayslipPDF renders the payslip view as a single-page A4 PDF.
func RenderPayslipPDF(p payroll.PayslipResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if p.Record.EmployeeName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", p.Record.EmployeeName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %02d/%d", p.Record.Month, p.Record.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %s", p.Record.BaseSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hours worked: %.2f", p.Record.HoursWorked))
	pdf.Ln(10)

	if len(p.Deductions) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Deductions")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, d := range p.Deductions {
			pdf.Cell(0, 7, fmt.Sprintf("- %s: %s (%s)", d.Type, d.Amount.StringFixed(2), d.Details))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if p.Summary != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Attendance")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Present: %d  Late: %d  Absent: %d",
			p.Summary.DaysPresent, p.Summary.DaysLate, p.Summary.DaysAbsent))
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee contribution: %s", p.Record.EmployeeContribution.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employer contribution: %s", p.Record.EmployerContribution.StringFixed(2)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", p.Record.NetSalary.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
