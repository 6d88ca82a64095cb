package analytics

import "github.com/acis05/Pbiacis/internal/domain"

// Summarize monta o painel completo a partir dos registros já filtrados
func Summarize(records []domain.SalesRecord) domain.Dashboard {
	dashboard := domain.Dashboard{
		Top10Customer:     TopN(records, domain.DimensionCustomer, DefaultLimit),
		Top10CustomerType: TopN(records, domain.DimensionCustomerType, DefaultLimit),
		Top10City:         TopN(records, domain.DimensionCity, DefaultLimit),
		Top10Salesman:     TopN(records, domain.DimensionSalesman, DefaultLimit),
		Top10Item:         TopN(records, domain.DimensionItem, DefaultLimit),
		Top10Category:     TopN(records, domain.DimensionItemCategory, DefaultLimit),
		TopCustomer:       domain.TopCustomerPlaceholder,
		ItemMoMTop10:      make([]domain.MoMItem, 0),
		SalesmanMoMTop10:  make([]domain.MoMItem, 0),
	}

	customers := make(map[string]struct{})
	for _, record := range records {
		dashboard.TotalSales += record.AmountOrZero()
		if record.Customer != "" {
			customers[record.Customer] = struct{}{}
		}
	}
	dashboard.CustomerCount = len(customers)

	if len(dashboard.Top10Customer) > 0 {
		dashboard.TopCustomer = dashboard.Top10Customer[0].Label
	}

	current, ok := LatestPeriod(records)
	if !ok {
		return dashboard
	}

	comparison := MonthTotals(records, current)
	currentPeriod := comparison.CurrentPeriod.String()
	previousPeriod := comparison.PreviousPeriod.String()

	dashboard.TotalMonthCurrent = &comparison.Current
	dashboard.TotalMonthPrev = &comparison.Previous
	dashboard.TotalMonthDiff = &comparison.Diff
	dashboard.TotalMonthDiffPct = comparison.Pct
	dashboard.CurrentPeriod = &currentPeriod
	dashboard.PreviousPeriod = &previousPeriod
	dashboard.ItemMoMTop10 = MoMByDimension(records, domain.DimensionItem, current, DefaultLimit)
	dashboard.SalesmanMoMTop10 = MoMByDimension(records, domain.DimensionSalesman, current, DefaultLimit)

	return dashboard
}
