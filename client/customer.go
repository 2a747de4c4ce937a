package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"harshenterprise-backend/models"

	"github.com/google/uuid"
)

// ErrNotConfirmed is returned when a delete is attempted without a positive
// confirmation.
var ErrNotConfirmed = errors.New("delete not confirmed")

// CustomerFields is the writable field set of a customer record. Dates are
// YYYY-MM-DD strings as the forms produce them.
type CustomerFields struct {
	Name             string  `json:"name"`
	Mobile           string  `json:"mobile"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	BillNumber       string  `json:"billNumber"`
	ModelName        string  `json:"modelName"`
	Price            float64 `json:"price"`
	WarrantyDateFrom string  `json:"warrantyDateFrom,omitempty"`
	WarrantyDateTo   string  `json:"warrantyDateTo,omitempty"`
	InvoiceDate      string  `json:"invoiceDate,omitempty"`
}

// Validate mirrors the form's pre-submission check: no request is sent
// while a required field is missing.
func (f CustomerFields) Validate() error {
	missing := make([]string, 0, 6)
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"mobile", f.Mobile},
		{"address", f.Address},
		{"city", f.City},
		{"billNumber", f.BillNumber},
		{"modelName", f.ModelName},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// CustomerClient performs CRUD against /api/customers.
type CustomerClient struct {
	c *Client
}

func (cc *CustomerClient) List(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	resp, err := cc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/customers")
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return out, nil
}

func (cc *CustomerClient) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var out models.Customer
	resp, err := cc.c.http.R().SetContext(ctx).SetResult(&out).Get("/api/customers/" + id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (cc *CustomerClient) Create(ctx context.Context, fields CustomerFields) (*models.Customer, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	var out models.Customer
	resp, err := cc.c.http.R().SetContext(ctx).SetBody(fields).SetResult(&out).Post("/api/customers")
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

func (cc *CustomerClient) Update(ctx context.Context, id uuid.UUID, fields CustomerFields) (*models.Customer, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	var out models.Customer
	resp, err := cc.c.http.R().SetContext(ctx).SetBody(fields).SetResult(&out).Put("/api/customers/" + id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &out, nil
}

// Delete removes a customer. The destructive call is only issued after
// confirm returns true, mirroring the confirmation dialog of the UI.
func (cc *CustomerClient) Delete(ctx context.Context, id uuid.UUID, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}

	resp, err := cc.c.http.R().SetContext(ctx).Delete("/api/customers/" + id.String())
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Search filters a fetched customer list by case-insensitive substring
// match: a customer matches if ANY of name, mobile, bill number, model
// name, address or city contains the term.
func (cc *CustomerClient) Search(customers []models.Customer, term string) []models.Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return customers
	}

	out := make([]models.Customer, 0, len(customers))
	for _, cust := range customers {
		for _, field := range []string{
			cust.Name, cust.Mobile, cust.BillNumber, cust.ModelName, cust.Address, cust.City,
		} {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, cust)
				break
			}
		}
	}
	return out
}
