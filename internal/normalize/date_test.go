package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ISO já canônica permanece igual", input: "2025-01-31", expected: "2025-01-31"},
		{name: "ISO com mês de um dígito", input: "2025-1-5", expected: "2025-01-05"},
		{name: "Dia/mês/ano com quatro dígitos", input: "31/01/2025", expected: "2025-01-31"},
		{name: "Dia/mês/ano com dois dígitos", input: "31/01/25", expected: "2025-01-31"},
		{name: "Ano de dois dígitos acima do pivô", input: "01/02/99", expected: "1999-02-01"},
		{name: "Mês indonésio Des", input: "01 Des 2025", expected: "2025-12-01"},
		{name: "Mês indonésio Mei", input: "15 Mei 2024", expected: "2024-05-15"},
		{name: "Mês indonésio Agu minúsculo", input: "17 agu 2024", expected: "2024-08-17"},
		{name: "Mês indonésio Okt", input: "03 Okt 2023", expected: "2023-10-03"},
		{name: "Mês inglês Dec", input: "25 Dec 2024", expected: "2024-12-25"},
		{name: "Nome completo do mês usa as três primeiras letras", input: "02 Januari 2026", expected: "2026-01-02"},
		{name: "Mês desconhecido mantém o texto", input: "01 Xyz 2025", expected: "01 Xyz 2025"},
		{name: "Data inexistente mantém o texto", input: "31 Feb 2025", expected: "31 Feb 2025"},
		{name: "Barra com data inexistente mantém o texto", input: "31/02/2025", expected: "31/02/2025"},
		{name: "Texto livre mantém o texto", input: "Total", expected: "Total"},
		{name: "Vazio permanece vazio", input: "", expected: ""},
		{name: "Quatro partes mantém o texto", input: "01 Des 2025 extra", expected: "01 Des 2025 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Date(tt.input))
		})
	}
}

func TestDate_IdempotentOnCanonical(t *testing.T) {
	inputs := []string{"01 Des 2025", "31/01/25", "2024-02-29", "não é data"}

	for _, input := range inputs {
		once := Date(input)
		assert.Equal(t, once, Date(once), input)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate(" 02/01/2026 ")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("Date")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestDateChain_Order(t *testing.T) {
	// Os nomes documentam a ordem de tentativa dos formatos
	names := make([]string, 0, len(DefaultDateChain))
	for _, p := range DefaultDateChain {
		names = append(names, p.Name())
	}

	assert.Equal(t, []string{"iso", "day-month-year", "day-month-short-year", "day-month-name-year"}, names)
}

func TestDateChain_CustomChain(t *testing.T) {
	chain := DateChain{monthNameParser{}}

	assert.Equal(t, "2025-12-01", chain.Normalize("01 Des 2025"))
	assert.Equal(t, "2025-12-01", chain.Normalize("2025-12-01"))
	assert.Equal(t, "01/12/2025", chain.Normalize("01/12/2025"))
}
