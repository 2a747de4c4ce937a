// Package report derives the visit report from a fetched visit list:
// filtering, revenue totals, per-visit history and the printable/exportable
// artifacts. Everything here is pure; "now" is always passed in so renders
// are reproducible.
package report

import (
	"sort"
	"strings"
	"time"

	"harshenterprise-backend/models"
	"harshenterprise-backend/utils"
)

// Completion status of a visit relative to the render clock.
const (
	StatusDone    = "Done"
	StatusPending = "Pending"
)

// Filter constrains the visit list. Zero values mean "no constraint".
type Filter struct {
	StartDate    time.Time
	EndDate      time.Time
	CustomerName string
}

// Apply returns the visits whose next-visit date falls within the filter
// bounds and whose customer name contains the search term. The input slice
// is never mutated; the result is sorted by next-visit date descending,
// matching the report screen's ordering.
func Apply(visits []models.Visit, f Filter) []models.Visit {
	term := strings.ToLower(f.CustomerName)

	out := make([]models.Visit, 0, len(visits))
	for _, v := range visits {
		if v.NextVisitDate == nil {
			// A visit without a follow-up can never satisfy a date bound.
			if !f.StartDate.IsZero() || !f.EndDate.IsZero() {
				continue
			}
		} else {
			if !f.StartDate.IsZero() && v.NextVisitDate.Before(f.StartDate) {
				continue
			}
			if !f.EndDate.IsZero() && v.NextVisitDate.After(f.EndDate) {
				continue
			}
		}
		if term != "" && !strings.Contains(strings.ToLower(v.CustomerName), term) {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].NextVisitDate, out[j].NextVisitDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}

// TotalRevenue sums service charges over the given visits.
func TotalRevenue(visits []models.Visit) float64 {
	var total float64
	for _, v := range visits {
		total += v.ServiceCharges
	}
	return total
}

// PreviousVisitDates lists the follow-up dates of every other visit for the
// same customer that is strictly earlier than the given visit's follow-up,
// display-formatted and ascending. Duplicates are kept: two services on the
// same day are two visits.
func PreviousVisitDates(all []models.Visit, visit models.Visit) []string {
	if visit.NextVisitDate == nil {
		return nil
	}

	var previous []time.Time
	for _, v := range all {
		if v.ID == visit.ID || v.CustomerName != visit.CustomerName {
			continue
		}
		if v.NextVisitDate != nil && v.NextVisitDate.Before(*visit.NextVisitDate) {
			previous = append(previous, *v.NextVisitDate)
		}
	}
	sort.Slice(previous, func(i, j int) bool { return previous[i].Before(previous[j]) })

	dates := make([]string, len(previous))
	for i := range previous {
		dates[i] = utils.FormatForDisplay(&previous[i])
	}
	return dates
}

// CompletionStatus derives Done/Pending from the follow-up date and the
// render clock. It is never stored; the same visit flips to Done once the
// clock passes its next-visit date.
func CompletionStatus(visit models.Visit, now time.Time) string {
	if visit.NextVisitDate != nil && visit.NextVisitDate.Before(now) {
		return StatusDone
	}
	return StatusPending
}

// Row is one line of the exported report, every column pre-formatted.
type Row struct {
	Customer       string
	Employee       string
	Mobile         string
	Service        string
	Charges        string
	Address        string
	NextVisitDate  string
	VisitTime      string
	PaymentStatus  string
	VisitStatus    string
	PreviousVisits []string
}

// Rows assembles export rows for the filtered visits, deriving the previous
// visit history against the full list and the completion status against now.
func Rows(all, filtered []models.Visit, now time.Time) []Row {
	rows := make([]Row, 0, len(filtered))
	for _, v := range filtered {
		rows = append(rows, Row{
			Customer:       v.CustomerName,
			Employee:       v.EmployeeName,
			Mobile:         v.EmployeeMobile,
			Service:        v.ServiceDescription,
			Charges:        "Rs. " + utils.FormatINR(v.ServiceCharges),
			Address:        v.ServiceAddress,
			NextVisitDate:  utils.FormatForDisplay(v.NextVisitDate),
			VisitTime:      v.VisitTime,
			PaymentStatus:  v.PaymentStatus,
			VisitStatus:    CompletionStatus(v, now),
			PreviousVisits: PreviousVisitDates(all, v),
		})
	}
	return rows
}
