// Package migration cria as tabelas da aplicação quando ainda não existem
package migration

import (
	"context"
	"fmt"

	"github.com/acis05/Pbiacis/infrastructure/database"
	"github.com/sirupsen/logrus"
)

type dialect struct {
	serial string
	real   string
	bool   string
}

var dialects = map[string]dialect{
	database.DriverPostgres: {serial: "SERIAL PRIMARY KEY", real: "DOUBLE PRECISION", bool: "BOOLEAN NOT NULL DEFAULT TRUE"},
	database.DriverSQLite:   {serial: "INTEGER PRIMARY KEY AUTOINCREMENT", real: "REAL", bool: "BOOLEAN NOT NULL DEFAULT 1"},
}

func statements(d dialect) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sales_detail (
			id %s,
			tenant TEXT NOT NULL,
			invoice_date TEXT,
			invoice_no TEXT,
			customer TEXT,
			salesman TEXT,
			item TEXT,
			qty %s,
			amount %s,
			item_category TEXT,
			city TEXT,
			customer_type TEXT,
			imported_at TIMESTAMP NOT NULL
		)`, d.serial, d.real, d.real),
		`CREATE INDEX IF NOT EXISTS idx_sales_tenant ON sales_detail (tenant)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales_detail (invoice_date)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales_detail (customer)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_salesman ON sales_detail (salesman)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_item ON sales_detail (item)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS access_codes (
			id %s,
			code TEXT NOT NULL UNIQUE,
			tenant TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			active %s,
			valid_from TEXT,
			valid_to TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, d.serial, d.bool),
	}
}

// Run executa as instruções de criação em ordem; todas são idempotentes
func Run(ctx context.Context, conn database.Conn) error {
	d, ok := dialects[conn.Driver()]
	if !ok {
		return fmt.Errorf("dialeto sem migração: %q", conn.Driver())
	}

	for _, stmt := range statements(d) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao executar migração: %w", err)
		}
	}

	logrus.Infof("Migrações aplicadas (%s)", conn.Driver())
	return nil
}
