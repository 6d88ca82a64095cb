package domain

import "fmt"

// Dimension é um campo categórico usado como chave de agrupamento
type Dimension string

const (
	DimensionCustomer     Dimension = "customer"
	DimensionCustomerType Dimension = "customer_type"
	DimensionCity         Dimension = "city"
	DimensionSalesman     Dimension = "salesman"
	DimensionItem         Dimension = "item"
	DimensionItemCategory Dimension = "item_category"
)

var Dimensions = []Dimension{
	DimensionCustomer,
	DimensionCustomerType,
	DimensionCity,
	DimensionSalesman,
	DimensionItem,
	DimensionItemCategory,
}

func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("dimensão inválida: %q", s)
}
