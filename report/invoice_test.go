package report

import (
	"bytes"
	"testing"
	"time"

	"harshenterprise-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoicePDF(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	v := models.Visit{
		ID:                 uuid.New(),
		CustomerName:       "Asha Traders",
		ServiceDescription: "Filter replacement",
		ServiceCharges:     1250.5,
		ServiceAddress:     "14 MG Road, Pune",
		NextVisitDate:      date(2024, 9, 1),
		PaymentStatus:      models.PaymentPaid,
	}

	out, err := RenderInvoicePDF(v, "INV-20240605-ABC123", now)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderInvoicePDFEmptyInvoiceNo(t *testing.T) {
	v := models.Visit{
		ID:            uuid.New(),
		CustomerName:  "Ravi Kumar",
		PaymentStatus: models.PaymentPending,
	}

	out, err := RenderInvoicePDF(v, "", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
