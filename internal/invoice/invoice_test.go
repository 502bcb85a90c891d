package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/domain"
)

type InvoiceTestSuite struct {
	suite.Suite
	billing *domain.InstitutionBilling
	tenant  *domain.Tenant
}

func TestInvoice(t *testing.T) {
	suite.Run(t, new(InvoiceTestSuite))
}

func (s *InvoiceTestSuite) SetupTest() {
	paidAt := time.Date(2026, time.March, 20, 10, 0, 0, 0, time.UTC)
	s.billing = &domain.InstitutionBilling{
		ID:          "billing-1",
		TenantID:    "tenant-1",
		MonthYear:   "2026-03",
		TotalAmount: 18000,
		Status:      domain.BillingPaid,
		DueDate:     time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		PaidAt:      &paidAt,
		CreatedAt:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	s.tenant = &domain.Tenant{
		ID:           "tenant-1",
		Name:         "Springfield Academy",
		Address:      "12 Elm St",
		ContactEmail: "admin@springfield.edu",
		GST:          "GST12345",
	}
}

func (s *InvoiceTestSuite) TestRenderProducesPDF() {
	var buf bytes.Buffer
	s.NoError(Render(&buf, s.billing, s.tenant))
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func (s *InvoiceTestSuite) TestRenderToleratesMalformedMonthCode() {
	s.billing.MonthYear = "bad"

	var buf bytes.Buffer
	s.NoError(Render(&buf, s.billing, s.tenant))
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func (s *InvoiceTestSuite) TestObjectKeyLayout() {
	s.Equal("invoices/tenant-1/2026-03/billing-1.pdf", ObjectKey("tenant-1", "2026-03", "billing-1"))
}
