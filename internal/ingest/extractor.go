package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/acis05/Pbiacis/internal/domain"
)

// RawRow contém o texto das células de uma linha aceita, ainda sem normalização.
// Campos opcionais além do fim da linha ficam vazios.
type RawRow struct {
	Index        int
	InvoiceDate  string
	InvoiceNo    string
	Customer     string
	Salesman     string
	Item         string
	Qty          string
	Amount       string
	ItemCategory string
	City         string
	CustomerType string
}

type Extraction struct {
	Rows    int
	Raw     []RawRow
	Skipped []domain.SkippedRow
}

// Extractor percorre as linhas <tr> do documento e lê as células pelas posições do layout
type Extractor struct {
	layout Layout
}

func NewExtractor(layout Layout) *Extractor {
	return &Extractor{layout: layout}
}

func (e *Extractor) Extract(r io.Reader) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler documento HTML: %w", err)
	}

	extraction := &Extraction{
		Raw:     make([]RawRow, 0),
		Skipped: make([]domain.SkippedRow, 0),
	}

	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		extraction.Rows++

		row, reason, ok := e.readRow(i, tr.Find("td"))
		if !ok {
			extraction.Skipped = append(extraction.Skipped, domain.SkippedRow{Row: i, Reason: reason})
			return
		}

		extraction.Raw = append(extraction.Raw, row)
	})

	return extraction, nil
}

func (e *Extractor) readRow(index int, cells *goquery.Selection) (RawRow, domain.SkipReason, bool) {
	count := cells.Length()
	if count < e.layout.MinCells {
		return RawRow{}, domain.SkipTooShort, false
	}

	cell := func(field Field) string {
		offset, ok := e.layout.Columns[field]
		if !ok || offset >= count {
			return ""
		}
		return strings.TrimSpace(cells.Eq(offset).Text())
	}

	date := cell(FieldInvoiceDate)
	if date == "" {
		return RawRow{}, domain.SkipBlankDate, false
	}
	if date == e.layout.HeaderLabel {
		return RawRow{}, domain.SkipHeader, false
	}

	return RawRow{
		Index:        index,
		InvoiceDate:  date,
		InvoiceNo:    cell(FieldInvoiceNo),
		Customer:     cell(FieldCustomer),
		Salesman:     cell(FieldSalesman),
		Item:         cell(FieldItem),
		Qty:          cell(FieldQty),
		Amount:       cell(FieldAmount),
		ItemCategory: cell(FieldItemCategory),
		City:         cell(FieldCity),
		CustomerType: cell(FieldCustomerType),
	}, "", true
}
