package client

import (
	"context"

	"harshenterprise-backend/models"
	"harshenterprise-backend/utils"
)

// DashboardSummary is the composed view behind the dashboard screen: the
// visits on the selected date plus the three summary cards.
type DashboardSummary struct {
	Date          string         `json:"date"`
	Visits        []models.Visit `json:"visits"`
	TodayCount    int64          `json:"todayCount"`
	UpcomingCount int64          `json:"upcomingCount"`
	TotalRevenue  float64        `json:"totalRevenue"`
	RevenueINR    string         `json:"revenueINR"`
}

// DashboardSummary composes the server-side aggregates for the selected
// date (YYYY-MM-DD) into one view. Purely compositional: every number is
// fetched, nothing is derived locally beyond formatting.
func (c *Client) DashboardSummary(ctx context.Context, date string) (*DashboardSummary, error) {
	visits, err := c.Visits().ByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	todayCount, err := c.Visits().TodayCount(ctx)
	if err != nil {
		return nil, err
	}
	upcomingCount, err := c.Visits().UpcomingCount(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := c.Visits().TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Date:          date,
		Visits:        visits,
		TodayCount:    todayCount,
		UpcomingCount: upcomingCount,
		TotalRevenue:  revenue,
		RevenueINR:    utils.FormatINR(revenue),
	}, nil
}
