package entity

import "strings"

// AlertFilter narrows a page of alerts on the client. A zero value matches everything.
type AlertFilter struct {
	Bucket SeverityBucket // Empty means all buckets.
	Search string         // Case-insensitive text matched against the display fields.
}

// Matches reports whether a passes the filter.
func (f AlertFilter) Matches(a *Alert) bool {
	if f.Bucket != "" && a.Bucket() != f.Bucket {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}

	fields := []string{
		StripMarkup(a.VehicleCode),
		StripMarkup(a.LicensePlate),
		StripMarkup(a.AlertType),
		a.Severity,
		StripMarkup(a.Plant),
		StripMarkup(a.Area),
		StripMarkup(a.ShortDescription),
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}

// FilterAlerts returns the alerts matching f, preserving order.
func FilterAlerts(alerts []Alert, f AlertFilter) []Alert {
	filtered := make([]Alert, 0, len(alerts))
	for i := range alerts {
		if f.Matches(&alerts[i]) {
			filtered = append(filtered, alerts[i])
		}
	}

	return filtered
}

// AlertPageStats are the counters shown above the history list. They are
// computed over the whole page, not the filtered view.
type AlertPageStats struct {
	TotalElements int64
	OnPage        int
	Pending       int
	Critical      int
}

// StatsFor computes the counters for a page of alerts.
func StatsFor(page *Page[Alert]) AlertPageStats {
	if page == nil {
		return AlertPageStats{}
	}

	stats := AlertPageStats{
		TotalElements: page.TotalElements,
		OnPage:        len(page.Content),
	}
	for i := range page.Content {
		if !page.Content[i].Acknowledged {
			stats.Pending++
		}
		if page.Content[i].Bucket() == SeverityHigh {
			stats.Critical++
		}
	}

	return stats
}
