package ingest

import (
	"io"

	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/normalize"
)

// BuildRecord normaliza os campos de uma linha e monta o registro canônico
func BuildRecord(raw RawRow) domain.SalesRecord {
	return domain.SalesRecord{
		InvoiceDate:  normalize.Date(raw.InvoiceDate),
		InvoiceNo:    raw.InvoiceNo,
		Customer:     raw.Customer,
		Salesman:     raw.Salesman,
		Item:         raw.Item,
		Qty:          normalize.Number(raw.Qty),
		Amount:       normalize.Number(raw.Amount),
		ItemCategory: optional(raw.ItemCategory),
		City:         optional(raw.City),
		CustomerType: optional(raw.CustomerType),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Parse lê o documento e devolve os registros na ordem em que aparecem, junto com
// as linhas descartadas e as datas que ficaram no texto original
func Parse(r io.Reader, layout Layout) (domain.ExtractionReport, error) {
	extraction, err := NewExtractor(layout).Extract(r)
	if err != nil {
		return domain.ExtractionReport{}, err
	}

	report := domain.ExtractionReport{
		Rows:          extraction.Rows,
		Records:       make([]domain.SalesRecord, 0, len(extraction.Raw)),
		Skipped:       extraction.Skipped,
		UnparsedDates: make([]string, 0),
	}

	for _, raw := range extraction.Raw {
		record := BuildRecord(raw)
		if _, ok := normalize.ParseDate(record.InvoiceDate); !ok {
			report.UnparsedDates = append(report.UnparsedDates, record.InvoiceDate)
		}
		report.Records = append(report.Records, record)
	}

	return report, nil
}
