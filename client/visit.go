package client

import (
	"context"
	"fmt"
	"strings"

	"harshenterprise-backend/models"

	"github.com/google/uuid"
)

// VisitFields is the writable field set of a visit record. Dates are
// YYYY-MM-DD strings; the server computes nextVisitDate (+3 months) when
// it is left empty.
type VisitFields struct {
	CustomerID         string  `json:"customerId,omitempty"`
	CustomerName       string  `json:"customerName"`
	EmployeeName       string  `json:"employeeName"`
	EmployeeMobile     string  `json:"employeeMobile"`
	ServiceDescription string  `json:"serviceDescription"`
	ServiceCharges     float64 `json:"serviceCharges"`
	ServiceAddress     string  `json:"serviceAddress"`
	VisitDate          string  `json:"visitDate,omitempty"`
	NextVisitDate      string  `json:"nextVisitDate,omitempty"`
	InstallationDate   string  `json:"installationDate,omitempty"`
	VisitTime          string  `json:"visitTime,omitempty"`
	PaymentStatus      string  `json:"paymentStatus,omitempty"`
	VisitStatus        string  `json:"visitStatus,omitempty"`
}

// Validate mirrors the form's pre-submission check.
func (f VisitFields) Validate() error {
	if strings.TrimSpace(f.CustomerName) == "" && f.CustomerID == "" {
		return fmt.Errorf("required fields missing: customerName")
	}
	if f.PaymentStatus != "" &&
		f.PaymentStatus != models.PaymentPending && f.PaymentStatus != models.PaymentPaid {
		return fmt.Errorf("paymentStatus must be %s or %s", models.PaymentPending, models.PaymentPaid)
	}
	return nil
}

// VisitClient performs CRUD against /api/visits and wraps the server-side
// aggregate queries.
type VisitClient struct {
	c *Client
}

func (vc *VisitClient) List(ctx context.Context) ([]models.Visit, error) {
	var out []models.Visit
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits")
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

func (vc *VisitClient) Get(ctx context.Context, id uuid.UUID) (*models.Visit, error) {
	var out models.Visit
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits/" + id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (vc *VisitClient) Create(ctx context.Context, fields VisitFields) (*models.Visit, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	var out models.Visit
	resp, err := vc.c.http.R().SetContext(ctx).SetBody(fields).SetResult(&out).Post("/api/visits")
	if err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (vc *VisitClient) Update(ctx context.Context, id uuid.UUID, fields VisitFields) (*models.Visit, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	var out models.Visit
	resp, err := vc.c.http.R().SetContext(ctx).SetBody(fields).SetResult(&out).Put("/api/visits/" + id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

// Delete removes a visit after a positive confirmation, like the UI's
// confirmation dialog.
func (vc *VisitClient) Delete(ctx context.Context, id uuid.UUID, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}

	resp, err := vc.c.http.R().SetContext(ctx).Delete("/api/visits/" + id.String())
	if err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Today returns the visits whose follow-up is due today.
func (vc *VisitClient) Today(ctx context.Context) ([]models.Visit, error) {
	var out []models.Visit
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits/today")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's visits: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

// ByDate returns the visits whose follow-up falls on the given ISO date.
func (vc *VisitClient) ByDate(ctx context.Context, date string) ([]models.Visit, error) {
	var out []models.Visit
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits/date/" + date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits for %s: %w", date, err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

type countResponse struct {
	Count int64 `json:"count"`
}

func (vc *VisitClient) TodayCount(ctx context.Context) (int64, error) {
	var out countResponse
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits/today/count")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch today's visit count: %w", err)
	}
	if resp.IsError() {
		return 0, apiError(resp)
	}
	return out.Count, nil
}

func (vc *VisitClient) UpcomingCount(ctx context.Context) (int64, error) {
	var out countResponse
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits/upcoming/count")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch upcoming visit count: %w", err)
	}
	if resp.IsError() {
		return 0, apiError(resp)
	}
	return out.Count, nil
}

type revenueResponse struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

func (vc *VisitClient) TotalRevenue(ctx context.Context) (float64, error) {
	var out revenueResponse
	resp, err := vc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/visits/revenue/total")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total revenue: %w", err)
	}
	if resp.IsError() {
		return 0, apiError(resp)
	}
	return out.TotalRevenue, nil
}
