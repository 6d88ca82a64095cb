package normalize

import (
	"strconv"
	"strings"
)

// Number extrai um valor numérico de texto formatado: "20,000" -> 20000.
// Separadores de milhar e decimal são descartados da mesma forma, então
// "350.000,00" vira 35000000. Texto vazio, "-" ou não numérico retorna nil.
func Number(text string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, text)

	if cleaned == "" || cleaned == "-" {
		return nil
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}

	return &value
}
