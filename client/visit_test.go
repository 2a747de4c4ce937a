package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"harshenterprise-backend/models"
	"harshenterprise-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// visitServer is an in-memory stand-in for the visit endpoints, including
// the server-side next-visit default and the aggregate queries.
func visitServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	store := map[uuid.UUID]models.Visit{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/visits", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var in VisitFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		v := models.Visit{
			ID:                 uuid.New(),
			CustomerName:       in.CustomerName,
			EmployeeName:       in.EmployeeName,
			EmployeeMobile:     in.EmployeeMobile,
			ServiceDescription: in.ServiceDescription,
			ServiceCharges:     in.ServiceCharges,
			ServiceAddress:     in.ServiceAddress,
			VisitTime:          in.VisitTime,
			PaymentStatus:      in.PaymentStatus,
			VisitStatus:        in.VisitStatus,
		}
		if v.PaymentStatus == "" {
			v.PaymentStatus = models.PaymentPending
		}
		if in.VisitDate != "" {
			d, err := utils.ParseInputDate(in.VisitDate)
			require.NoError(t, err)
			v.VisitDate = &d
			if in.NextVisitDate == "" {
				next := utils.NextVisitDate(d)
				v.NextVisitDate = &next
			}
		}
		if in.NextVisitDate != "" {
			d, err := utils.ParseInputDate(in.NextVisitDate)
			require.NoError(t, err)
			v.NextVisitDate = &d
		}
		store[v.ID] = v

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(v)
	})

	mux.HandleFunc("GET /api/visits", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		out := make([]models.Visit, 0, len(store))
		for _, v := range store {
			out = append(out, v)
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("GET /api/visits/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid visit ID format"})
			return
		}
		v, ok := store[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Visit not found"})
			return
		}
		json.NewEncoder(w).Encode(v)
	})

	mux.HandleFunc("DELETE /api/visits/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		id, err := uuid.Parse(r.PathValue("id"))
		require.NoError(t, err)
		delete(store, id)
		json.NewEncoder(w).Encode(map[string]string{"message": "Visit deleted successfully"})
	})

	mux.HandleFunc("GET /api/visits/today/count", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(map[string]int64{"count": 3})
	})

	mux.HandleFunc("GET /api/visits/upcoming/count", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(map[string]int64{"count": 7})
	})

	mux.HandleFunc("GET /api/visits/revenue/total", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(map[string]float64{"totalRevenue": 42500.75})
	})

	mux.HandleFunc("GET /api/visits/date/{date}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		day, err := utils.ParseInputDate(r.PathValue("date"))
		require.NoError(t, err)
		out := make([]models.Visit, 0)
		for _, v := range store {
			if v.NextVisitDate != nil && utils.BeginningOfDay(*v.NextVisitDate).Equal(day) {
				out = append(out, v)
			}
		}
		json.NewEncoder(w).Encode(out)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVisitCreateDefaultsNextVisitDate(t *testing.T) {
	var hits atomic.Int64
	srv := visitServer(t, &hits)
	api := New(srv.URL)

	created, err := api.Visits().Create(context.Background(), VisitFields{
		CustomerName:   "Asha Traders",
		ServiceCharges: 1250.5,
		VisitDate:      "2024-01-31",
	})
	require.NoError(t, err)
	require.NotNil(t, created.NextVisitDate)
	// +3 calendar months, clamped to the end of April.
	assert.Equal(t, "2024-04-30", utils.FormatForInput(created.NextVisitDate))
	assert.Equal(t, models.PaymentPending, created.PaymentStatus)
}

func TestVisitCreateExplicitNextVisitDateWins(t *testing.T) {
	var hits atomic.Int64
	srv := visitServer(t, &hits)
	api := New(srv.URL)

	created, err := api.Visits().Create(context.Background(), VisitFields{
		CustomerName:  "Asha Traders",
		VisitDate:     "2024-01-31",
		NextVisitDate: "2024-03-01",
		PaymentStatus: models.PaymentPaid,
	})
	require.NoError(t, err)
	require.NotNil(t, created.NextVisitDate)
	assert.Equal(t, "2024-03-01", utils.FormatForInput(created.NextVisitDate))
}

func TestVisitValidation(t *testing.T) {
	var hits atomic.Int64
	srv := visitServer(t, &hits)
	api := New(srv.URL)

	_, err := api.Visits().Create(context.Background(), VisitFields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customerName")

	_, err = api.Visits().Create(context.Background(), VisitFields{
		CustomerName:  "Asha",
		PaymentStatus: "Overdue",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paymentStatus")

	assert.Equal(t, int64(0), hits.Load())
}

func TestVisitDeleteRequiresConfirmation(t *testing.T) {
	var hits atomic.Int64
	srv := visitServer(t, &hits)
	api := New(srv.URL)

	created, err := api.Visits().Create(context.Background(), VisitFields{
		CustomerName: "Asha Traders",
		VisitDate:    "2024-05-01",
	})
	require.NoError(t, err)
	hits.Store(0)

	err = api.Visits().Delete(context.Background(), created.ID, func() bool { return false })
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, int64(0), hits.Load())

	require.NoError(t, api.Visits().Delete(context.Background(), created.ID, func() bool { return true }))

	list, err := api.Visits().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestVisitAggregates(t *testing.T) {
	var hits atomic.Int64
	srv := visitServer(t, &hits)
	api := New(srv.URL)

	todayCount, err := api.Visits().TodayCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), todayCount)

	upcoming, err := api.Visits().UpcomingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), upcoming)

	revenue, err := api.Visits().TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 42500.75, revenue, 1e-9)
}

func TestDashboardSummary(t *testing.T) {
	var hits atomic.Int64
	srv := visitServer(t, &hits)
	api := New(srv.URL)

	_, err := api.Visits().Create(context.Background(), VisitFields{
		CustomerName:   "Asha Traders",
		ServiceCharges: 900,
		NextVisitDate:  "2024-06-15",
	})
	require.NoError(t, err)

	summary, err := api.DashboardSummary(context.Background(), "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", summary.Date)
	require.Len(t, summary.Visits, 1)
	assert.Equal(t, "Asha Traders", summary.Visits[0].CustomerName)
	assert.Equal(t, int64(3), summary.TodayCount)
	assert.Equal(t, int64(7), summary.UpcomingCount)
	assert.InDelta(t, 42500.75, summary.TotalRevenue, 1e-9)
	assert.Equal(t, "42,500.75", summary.RevenueINR)
}
