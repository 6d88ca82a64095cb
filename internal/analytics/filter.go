// Package analytics agrega os registros de venda para o painel: filtros por data,
// rankings por dimensão e comparações entre o mês mais recente e o anterior
package analytics

import (
	"fmt"
	"time"

	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/normalize"
)

// Filter mantém os registros cuja data está entre os limites (inclusivos).
// Sem limites todos os registros são retornados, inclusive os com data não reconhecida;
// com qualquer limite esses registros ficam de fora.
func Filter(records []domain.SalesRecord, filters domain.InsightFilters) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))

	if filters.IsEmpty() {
		return append(filtered, records...)
	}

	start := dayOf(filters.StartDate)
	end := dayOf(filters.EndDate)

	for _, record := range records {
		date, ok := normalize.ParseDate(record.InvoiceDate)
		if !ok {
			continue
		}
		if start != nil && date.Before(*start) {
			continue
		}
		if end != nil && date.After(*end) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// FilterISO aplica Filter com limites no formato YYYY-MM-DD; string vazia significa sem limite
func FilterISO(records []domain.SalesRecord, start, end string) ([]domain.SalesRecord, error) {
	var filters domain.InsightFilters

	if start != "" {
		t, err := time.Parse(time.DateOnly, start)
		if err != nil {
			return nil, fmt.Errorf("data inicial inválida %q: %w", start, err)
		}
		filters.StartDate = &t
	}

	if end != "" {
		t, err := time.Parse(time.DateOnly, end)
		if err != nil {
			return nil, fmt.Errorf("data final inválida %q: %w", end, err)
		}
		filters.EndDate = &t
	}

	return Filter(records, filters), nil
}

// dayOf descarta hora e fuso, comparando apenas o dia do calendário
func dayOf(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}
