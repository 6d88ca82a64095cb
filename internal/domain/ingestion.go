package domain

import "time"

type SkipReason string

const (
	SkipTooShort  SkipReason = "too_short"
	SkipBlankDate SkipReason = "blank_date"
	SkipHeader    SkipReason = "header"
)

// SkippedRow registra uma linha da tabela que não gerou registro
type SkippedRow struct {
	Row    int        `json:"row"` // Índice da linha <tr> no documento, a partir de zero
	Reason SkipReason `json:"reason"`
}

// ExtractionReport é o resultado da leitura de um relatório exportado
type ExtractionReport struct {
	Rows          int           `json:"rows"`
	Records       []SalesRecord `json:"-"`
	Skipped       []SkippedRow  `json:"skipped"`
	UnparsedDates []string      `json:"unparsed_dates"`
}

// ImportResult resume uma importação persistida
type ImportResult struct {
	FileName      string    `json:"file_name"`
	Tenant        string    `json:"tenant"`
	Rows          int       `json:"rows"`
	Imported      int       `json:"imported"`
	Skipped       int       `json:"skipped"`
	UnparsedDates int       `json:"unparsed_dates"`
	Replaced      bool      `json:"replaced"`
	ImportedAt    time.Time `json:"imported_at"`
}
