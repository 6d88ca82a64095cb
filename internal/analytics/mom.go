package analytics

import (
	"sort"

	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/normalize"
)

func recordPeriod(record domain.SalesRecord) (domain.Period, bool) {
	date, ok := normalize.ParseDate(record.InvoiceDate)
	if !ok {
		return domain.Period{}, false
	}
	return domain.PeriodOf(date), true
}

// LatestPeriod retorna o maior (ano, mês) entre as datas reconhecidas
func LatestPeriod(records []domain.SalesRecord) (domain.Period, bool) {
	var latest domain.Period
	found := false

	for _, record := range records {
		period, ok := recordPeriod(record)
		if !ok {
			continue
		}
		if !found || period.After(latest) {
			latest = period
			found = true
		}
	}

	return latest, found
}

// MonthTotals compara o total do período atual com o do mês imediatamente anterior
func MonthTotals(records []domain.SalesRecord, current domain.Period) domain.MonthComparison {
	comparison := domain.MonthComparison{
		CurrentPeriod:  current,
		PreviousPeriod: current.Previous(),
	}

	for _, record := range records {
		period, ok := recordPeriod(record)
		if !ok {
			continue
		}

		switch period {
		case comparison.CurrentPeriod:
			comparison.Current += record.AmountOrZero()
		case comparison.PreviousPeriod:
			comparison.Previous += record.AmountOrZero()
		}
	}

	comparison.Diff = comparison.Current - comparison.Previous
	if comparison.Previous != 0 {
		pct := comparison.Diff / comparison.Previous
		comparison.Pct = &pct
	}

	return comparison
}

// MoMByDimension soma por rótulo os valores do período atual e do anterior.
// Rótulos presentes em qualquer um dos dois meses entram, ordenados pelo valor atual.
func MoMByDimension(records []domain.SalesRecord, dimension domain.Dimension, current domain.Period, n int) []domain.MoMItem {
	if n <= 0 {
		n = DefaultLimit
	}

	previous := current.Previous()
	currentTotals := newGroupTotals()
	previousTotals := make(map[string]float64)

	for _, record := range records {
		period, ok := recordPeriod(record)
		if !ok || (period != current && period != previous) {
			continue
		}

		label, ok := record.DimensionValue(dimension)
		if !ok {
			continue
		}

		if period == current {
			currentTotals.add(label, record.AmountOrZero())
		} else {
			currentTotals.add(label, 0)
			previousTotals[label] += record.AmountOrZero()
		}
	}

	items := make([]domain.MoMItem, 0, len(currentTotals.labels))
	for _, label := range currentTotals.labels {
		items = append(items, domain.MoMItem{
			Label:    label,
			Current:  currentTotals.sums[label],
			Previous: previousTotals[label],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Current > items[j].Current
	})

	if len(items) > n {
		items = items[:n]
	}

	return items
}
