package domain

// TopCustomerPlaceholder é usado quando nenhuma linha possui cliente
const TopCustomerPlaceholder = "-"

type RankedItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type MoMItem struct {
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// MonthComparison compara o total do mês mais recente com o mês anterior.
// Pct é nulo quando o mês anterior não tem vendas.
type MonthComparison struct {
	CurrentPeriod  Period
	PreviousPeriod Period
	Current        float64
	Previous       float64
	Diff           float64
	Pct            *float64
}

// Dashboard é o resumo consumido pelo painel de vendas
type Dashboard struct {
	TotalSales        float64      `json:"total_sales"`
	CustomerCount     int          `json:"customer_count"`
	TopCustomer       string       `json:"top_customer"`
	Top10Customer     []RankedItem `json:"top10_customer"`
	Top10CustomerType []RankedItem `json:"top10_customer_type"`
	Top10City         []RankedItem `json:"top10_city"`
	Top10Salesman     []RankedItem `json:"top10_salesman"`
	Top10Item         []RankedItem `json:"top10_item"`
	Top10Category     []RankedItem `json:"top10_category"`
	TotalMonthCurrent *float64     `json:"total_month_current"`
	TotalMonthPrev    *float64     `json:"total_month_prev"`
	TotalMonthDiff    *float64     `json:"total_month_diff"`
	TotalMonthDiffPct *float64     `json:"total_month_diff_pct"`
	CurrentPeriod     *string      `json:"current_period"`  // Formato mm-yyyy
	PreviousPeriod    *string      `json:"previous_period"` // Formato mm-yyyy
	ItemMoMTop10      []MoMItem    `json:"item_mom_top10"`
	SalesmanMoMTop10  []MoMItem    `json:"salesman_mom_top10"`
}
