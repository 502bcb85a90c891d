// Package invoice renders billing rows as PDF invoices, both for inline
// download and for archival to object storage.
package invoice

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/pkg/utils"
)

// ObjectKey is the object-storage path for an archived invoice:
// invoices/{tenant_id}/{month_year}/{billing_id}.pdf
func ObjectKey(tenantID, monthYear, billingID string) string {
	return fmt.Sprintf("invoices/%s/%s/%s.pdf", tenantID, monthYear, billingID)
}

// Render writes the invoice PDF for a billing row to w.
func Render(w io.Writer, billing *domain.InstitutionBilling, tenant *domain.Tenant) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "L", false, 0, "")

	// A malformed month code is rendered as-is rather than pretty-printed.
	period := billing.MonthYear
	if month, err := utils.ParseMonthYear(billing.MonthYear); err == nil {
		period = fmt.Sprintf("%s %d", utils.MonthLabel(billing.MonthYear), month.Year())
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice no: %s", billing.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Billing period: %s", period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued: %s", billing.CreatedAt.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Billed to", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tenant.Name, "", 1, "L", false, 0, "")
	if tenant.Address != "" {
		pdf.CellFormat(0, 6, tenant.Address, "", 1, "L", false, 0, "")
	}
	if tenant.ContactEmail != "" {
		pdf.CellFormat(0, 6, tenant.ContactEmail, "", 1, "L", false, 0, "")
	}
	if tenant.GST != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("GST: %s", tenant.GST), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Status", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	description := fmt.Sprintf("Platform subscription, %s", billing.MonthYear)
	pdf.CellFormat(100, 8, description, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, string(billing.Status), "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", billing.TotalAmount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(145, 8, "Total due", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", billing.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	if !billing.DueDate.IsZero() {
		pdf.CellFormat(0, 6, fmt.Sprintf("Due by: %s", billing.DueDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	}
	if billing.PaidAt != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Paid at: %s", billing.PaidAt.Format(time.RFC3339)), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
