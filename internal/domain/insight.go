package domain

import "time"

// InsightFilters limita as linhas consideradas por data da fatura (inclusivo)
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

func (f InsightFilters) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil
}
