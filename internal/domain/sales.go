// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// SalesRecord é a linha canônica de venda produzida pela importação.
// Campos numéricos nulos representam células vazias ou não numéricas.
type SalesRecord struct {
	InvoiceDate  string   `json:"invoice_date"` // YYYY-MM-DD ou o texto original quando não reconhecido
	InvoiceNo    string   `json:"invoice_no"`
	Customer     string   `json:"customer"`
	Salesman     string   `json:"salesman"`
	Item         string   `json:"item"`
	Qty          *float64 `json:"qty"`
	Amount       *float64 `json:"amount"`
	ItemCategory *string  `json:"item_category"`
	City         *string  `json:"city"`
	CustomerType *string  `json:"customer_type"`
}

// AmountOrZero retorna o valor da linha, tratando valor ausente como zero
func (r SalesRecord) AmountOrZero() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

// DimensionValue retorna o rótulo da linha para a dimensão informada.
// Valores ausentes ou vazios não participam de agrupamentos.
func (r SalesRecord) DimensionValue(dimension Dimension) (string, bool) {
	var value string

	switch dimension {
	case DimensionCustomer:
		value = r.Customer
	case DimensionSalesman:
		value = r.Salesman
	case DimensionItem:
		value = r.Item
	case DimensionCustomerType:
		value = deref(r.CustomerType)
	case DimensionCity:
		value = deref(r.City)
	case DimensionItemCategory:
		value = deref(r.ItemCategory)
	default:
		return "", false
	}

	return value, value != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
