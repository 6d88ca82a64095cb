// Package ingest lê os relatórios de vendas exportados pelo Accurate (tabelas HTML)
// e monta os registros canônicos
package ingest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field identifica uma coluna lógica do relatório
type Field string

const (
	FieldInvoiceDate  Field = "invoice_date"
	FieldInvoiceNo    Field = "invoice_no"
	FieldCustomer     Field = "customer"
	FieldSalesman     Field = "salesman"
	FieldItem         Field = "item"
	FieldQty          Field = "qty"
	FieldAmount       Field = "amount"
	FieldItemCategory Field = "item_category"
	FieldCity         Field = "city"
	FieldCustomerType Field = "customer_type"
)

var requiredFields = []Field{
	FieldInvoiceDate,
	FieldInvoiceNo,
	FieldCustomer,
	FieldSalesman,
	FieldItem,
	FieldQty,
	FieldAmount,
}

var optionalFields = []Field{
	FieldItemCategory,
	FieldCity,
	FieldCustomerType,
}

// Layout descreve em qual célula (<td>) de cada linha está cada campo
type Layout struct {
	Columns     map[Field]int
	MinCells    int    // Linhas com menos células são descartadas
	HeaderLabel string // Texto da célula de data na linha de cabeçalho
}

// AccurateLayout é o layout observado no relatório "Rincian Penjualan" do Accurate,
// com cerca de 41 células por linha de dados
func AccurateLayout() Layout {
	return Layout{
		Columns: map[Field]int{
			FieldInvoiceDate:  1,
			FieldInvoiceNo:    5,
			FieldCustomer:     9,
			FieldSalesman:     13,
			FieldItem:         17,
			FieldQty:          21,
			FieldAmount:       25,
			FieldItemCategory: 29,
			FieldCity:         33,
			FieldCustomerType: 37,
		},
		MinCells:    38,
		HeaderLabel: "Date",
	}
}

// ParseLayout monta um layout a partir de pares "campo=posição", como vêm da configuração
func ParseLayout(columns []string, minCells int, headerLabel string) (Layout, error) {
	layout := Layout{
		Columns:     make(map[Field]int, len(columns)),
		MinCells:    minCells,
		HeaderLabel: headerLabel,
	}

	known := make(map[Field]bool)
	for _, f := range append(append([]Field{}, requiredFields...), optionalFields...) {
		known[f] = true
	}

	for _, entry := range columns {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, position, found := strings.Cut(entry, "=")
		if !found {
			return Layout{}, fmt.Errorf("coluna inválida %q: use campo=posição", entry)
		}

		field := Field(strings.TrimSpace(name))
		if !known[field] {
			return Layout{}, fmt.Errorf("campo desconhecido no layout: %q", field)
		}

		offset, err := strconv.Atoi(strings.TrimSpace(position))
		if err != nil {
			return Layout{}, fmt.Errorf("posição inválida para %s: %w", field, err)
		}

		layout.Columns[field] = offset
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}

	return layout, nil
}

// Validate verifica se todos os campos obrigatórios cabem no mínimo de células
func (l Layout) Validate() error {
	missing := make([]string, 0)
	for _, field := range requiredFields {
		offset, ok := l.Columns[field]
		if !ok {
			missing = append(missing, string(field))
			continue
		}
		if offset < 0 {
			return fmt.Errorf("posição negativa para %s", field)
		}
		if offset >= l.MinCells {
			return fmt.Errorf("mínimo de células (%d) não alcança %s na posição %d", l.MinCells, field, offset)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("campos obrigatórios ausentes no layout: %s", strings.Join(missing, ", "))
	}

	for _, field := range optionalFields {
		if offset, ok := l.Columns[field]; ok && offset < 0 {
			return fmt.Errorf("posição negativa para %s", field)
		}
	}

	return nil
}
