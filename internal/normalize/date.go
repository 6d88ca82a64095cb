// Package normalize converte o texto das células exportadas em valores canônicos
package normalize

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalDateLayout é o formato persistido para datas reconhecidas
const CanonicalDateLayout = time.DateOnly

// DateParser é uma tentativa de leitura de data. Retorna false quando o texto não
// corresponde ao formato.
type DateParser interface {
	Name() string
	Parse(text string) (time.Time, bool)
}

type layoutParser struct {
	name   string
	layout string
}

func (p layoutParser) Name() string { return p.name }

func (p layoutParser) Parse(text string) (time.Time, bool) {
	t, err := time.Parse(p.layout, text)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Nomes de meses em indonésio e inglês, pelas três primeiras letras
var monthsByPrefix = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MEI": time.May,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AGU": time.August,
	"AUG": time.August,
	"SEP": time.September,
	"OKT": time.October,
	"OCT": time.October,
	"NOV": time.November,
	"DES": time.December,
	"DEC": time.December,
}

var upper = cases.Upper(language.Und)

// monthNameParser lê datas como "01 Des 2025" ou "15 Mei 2024"
type monthNameParser struct{}

func (monthNameParser) Name() string { return "day-month-name-year" }

func (monthNameParser) Parse(text string) (time.Time, bool) {
	parts := strings.Fields(text)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, ok := lookupMonth(parts[1])
	if !ok {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	return calendarDate(year, month, day)
}

func lookupMonth(name string) (time.Month, bool) {
	prefix := []rune(upper.String(name))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	month, ok := monthsByPrefix[string(prefix)]
	return month, ok
}

// calendarDate rejeita datas que time.Date normalizaria (ex: 31 de fevereiro)
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	if year < 1 || year > 9999 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// DateChain tenta cada leitor na ordem até um reconhecer o texto
type DateChain []DateParser

// DefaultDateChain é a ordem usada na importação e nos filtros
var DefaultDateChain = DateChain{
	layoutParser{name: "iso", layout: "2006-1-2"},
	layoutParser{name: "day-month-year", layout: "2/1/2006"},
	layoutParser{name: "day-month-short-year", layout: "2/1/06"},
	monthNameParser{},
}

func (c DateChain) Parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, parser := range c {
		if t, ok := parser.Parse(text); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// Normalize retorna a data no formato canônico ou o texto original quando nenhum
// formato é reconhecido
func (c DateChain) Normalize(text string) string {
	t, ok := c.Parse(text)
	if !ok {
		return text
	}
	return t.Format(CanonicalDateLayout)
}

// ParseDate lê uma data usando a cadeia padrão
func ParseDate(text string) (time.Time, bool) {
	return DefaultDateChain.Parse(text)
}

// Date normaliza uma data usando a cadeia padrão
func Date(text string) string {
	return DefaultDateChain.Normalize(text)
}
