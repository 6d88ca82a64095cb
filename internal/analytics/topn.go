package analytics

import (
	"sort"

	"github.com/acis05/Pbiacis/internal/domain"
)

// DefaultLimit é o tamanho dos rankings do painel
const DefaultLimit = 10

// groupTotals soma valores por rótulo preservando a ordem da primeira ocorrência
type groupTotals struct {
	labels []string
	sums   map[string]float64
}

func newGroupTotals() *groupTotals {
	return &groupTotals{
		labels: make([]string, 0),
		sums:   make(map[string]float64),
	}
}

func (g *groupTotals) add(label string, amount float64) {
	if _, ok := g.sums[label]; !ok {
		g.labels = append(g.labels, label)
	}
	g.sums[label] += amount
}

// TopN soma o valor por rótulo da dimensão e retorna os n maiores em ordem decrescente.
// Empates mantêm a ordem em que o rótulo apareceu primeiro; n <= 0 usa DefaultLimit.
func TopN(records []domain.SalesRecord, dimension domain.Dimension, n int) []domain.RankedItem {
	if n <= 0 {
		n = DefaultLimit
	}

	totals := newGroupTotals()
	for _, record := range records {
		label, ok := record.DimensionValue(dimension)
		if !ok {
			continue
		}
		totals.add(label, record.AmountOrZero())
	}

	items := make([]domain.RankedItem, 0, len(totals.labels))
	for _, label := range totals.labels {
		items = append(items, domain.RankedItem{Label: label, Amount: totals.sums[label]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})

	if len(items) > n {
		items = items[:n]
	}

	return items
}
