package report

import (
	"testing"
	"time"

	"harshenterprise-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func visit(customer string, next *time.Time, charges float64) models.Visit {
	return models.Visit{
		ID:             uuid.New(),
		CustomerName:   customer,
		NextVisitDate:  next,
		ServiceCharges: charges,
		PaymentStatus:  models.PaymentPending,
	}
}

func TestApplyEmptyList(t *testing.T) {
	assert.Empty(t, Apply(nil, Filter{}))
	assert.Empty(t, Apply([]models.Visit{}, Filter{CustomerName: "x"}))
}

func TestApplyNoConstraints(t *testing.T) {
	visits := []models.Visit{
		visit("Asha", date(2024, 5, 1), 100),
		visit("Ravi", date(2024, 6, 1), 200),
		visit("Meera", nil, 50),
	}

	got := Apply(visits, Filter{})
	assert.Len(t, got, 3)
	// Sorted by next-visit date descending, nil dates last.
	assert.Equal(t, "Ravi", got[0].CustomerName)
	assert.Equal(t, "Asha", got[1].CustomerName)
	assert.Equal(t, "Meera", got[2].CustomerName)
}

func TestApplyDateBounds(t *testing.T) {
	visits := []models.Visit{
		visit("Asha", date(2024, 5, 1), 100),
		visit("Ravi", date(2024, 6, 1), 200),
		visit("Kiran", date(2024, 7, 1), 300),
		visit("Meera", nil, 50),
	}

	got := Apply(visits, Filter{StartDate: *date(2024, 5, 15)})
	require.Len(t, got, 2)
	assert.Equal(t, "Kiran", got[0].CustomerName)
	assert.Equal(t, "Ravi", got[1].CustomerName)

	got = Apply(visits, Filter{EndDate: *date(2024, 5, 31)})
	require.Len(t, got, 1)
	assert.Equal(t, "Asha", got[0].CustomerName)

	got = Apply(visits, Filter{StartDate: *date(2024, 5, 15), EndDate: *date(2024, 6, 15)})
	require.Len(t, got, 1)
	assert.Equal(t, "Ravi", got[0].CustomerName)

	// Bounds are inclusive.
	got = Apply(visits, Filter{StartDate: *date(2024, 6, 1), EndDate: *date(2024, 6, 1)})
	require.Len(t, got, 1)
	assert.Equal(t, "Ravi", got[0].CustomerName)
}

func TestApplyCustomerNameSubstring(t *testing.T) {
	visits := []models.Visit{
		visit("Asha Traders", date(2024, 5, 1), 100),
		visit("Ravi Kumar", date(2024, 6, 1), 200),
	}

	got := Apply(visits, Filter{CustomerName: "asha"})
	require.Len(t, got, 1)
	assert.Equal(t, "Asha Traders", got[0].CustomerName)

	got = Apply(visits, Filter{CustomerName: "KUMAR"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ravi Kumar", got[0].CustomerName)

	assert.Empty(t, Apply(visits, Filter{CustomerName: "nobody"}))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	visits := []models.Visit{
		visit("A", date(2024, 5, 1), 100),
		visit("B", date(2024, 6, 1), 200),
	}

	_ = Apply(visits, Filter{})
	assert.Equal(t, "A", visits[0].CustomerName)
	assert.Equal(t, "B", visits[1].CustomerName)
}

func TestTotalRevenue(t *testing.T) {
	assert.Equal(t, 0.0, TotalRevenue(nil))

	visits := []models.Visit{
		visit("A", date(2024, 5, 1), 150.50),
		visit("B", date(2024, 6, 1), 0), // missing charge coerced to zero
		visit("C", date(2024, 7, 1), 249.50),
	}
	assert.InDelta(t, 400.0, TotalRevenue(visits), 1e-9)
}

func TestTotalRevenueMatchesFilteredSum(t *testing.T) {
	visits := []models.Visit{
		visit("Asha", date(2024, 5, 1), 100),
		visit("Asha", date(2024, 6, 1), 200),
		visit("Ravi", date(2024, 6, 10), 400),
	}

	filtered := Apply(visits, Filter{CustomerName: "asha"})
	assert.InDelta(t, 300.0, TotalRevenue(filtered), 1e-9)
}

func TestPreviousVisitDates(t *testing.T) {
	first := visit("Asha", date(2024, 1, 10), 100)
	second := visit("Asha", date(2024, 4, 10), 100)
	third := visit("Asha", date(2024, 7, 10), 100)
	other := visit("Ravi", date(2024, 3, 1), 100)
	all := []models.Visit{third, first, other, second}

	got := PreviousVisitDates(all, third)
	assert.Equal(t, []string{"10/01/2024", "10/04/2024"}, got)

	got = PreviousVisitDates(all, second)
	assert.Equal(t, []string{"10/01/2024"}, got)

	assert.Empty(t, PreviousVisitDates(all, first))

	// Same-day duplicates are kept as-is.
	twin := visit("Asha", date(2024, 1, 10), 100)
	got = PreviousVisitDates(append(all, twin), second)
	assert.Equal(t, []string{"10/01/2024", "10/01/2024"}, got)

	// A visit without a follow-up has no history.
	assert.Empty(t, PreviousVisitDates(all, visit("Asha", nil, 0)))
}

func TestCompletionStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	yesterday := visit("A", date(2024, 6, 14), 0)
	assert.Equal(t, StatusDone, CompletionStatus(yesterday, now))

	tomorrow := visit("A", date(2024, 6, 16), 0)
	assert.Equal(t, StatusPending, CompletionStatus(tomorrow, now))

	noDate := visit("A", nil, 0)
	assert.Equal(t, StatusPending, CompletionStatus(noDate, now))
}

func TestRows(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	earlier := visit("Asha", date(2024, 3, 1), 500)
	later := models.Visit{
		ID:                 uuid.New(),
		CustomerName:       "Asha",
		EmployeeName:       "Sanjay",
		EmployeeMobile:     "+919876543210",
		ServiceDescription: "Filter replacement",
		ServiceCharges:     1250.5,
		ServiceAddress:     "14 MG Road, Pune",
		NextVisitDate:      date(2024, 9, 1),
		VisitTime:          "10:30",
		PaymentStatus:      models.PaymentPaid,
	}
	all := []models.Visit{later, earlier}

	rows := Rows(all, []models.Visit{later}, now)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Asha", r.Customer)
	assert.Equal(t, "Sanjay", r.Employee)
	assert.Equal(t, "+919876543210", r.Mobile)
	assert.Equal(t, "Filter replacement", r.Service)
	assert.Equal(t, "Rs. 1,250.50", r.Charges)
	assert.Equal(t, "14 MG Road, Pune", r.Address)
	assert.Equal(t, "01/09/2024", r.NextVisitDate)
	assert.Equal(t, "10:30", r.VisitTime)
	assert.Equal(t, models.PaymentPaid, r.PaymentStatus)
	assert.Equal(t, StatusPending, r.VisitStatus)
	assert.Equal(t, []string{"01/03/2024"}, r.PreviousVisits)
}
