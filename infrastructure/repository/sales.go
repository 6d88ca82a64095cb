package repository

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/acis05/Pbiacis/infrastructure/database"
	"github.com/acis05/Pbiacis/internal/domain"
)

const (
	salesTable = "sales_detail"

	// Linhas por INSERT; 12 parâmetros por linha ficam abaixo do limite do SQLite
	salesInsertBatchSize = 500
)

var salesColumns = []string{
	"invoice_date",
	"invoice_no",
	"customer",
	"salesman",
	"item",
	"qty",
	"amount",
	"item_category",
	"city",
	"customer_type",
}

type SalesRepository interface {
	// Replace apaga as vendas do tenant e grava os registros na mesma transação
	Replace(ctx context.Context, tenant string, records []domain.SalesRecord) error
	Append(ctx context.Context, tenant string, records []domain.SalesRecord) error
	// ListByTenant retorna as vendas na ordem em que foram importadas
	ListByTenant(ctx context.Context, tenant string) ([]domain.SalesRecord, error)
}

type salesRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewSalesRepository(conn database.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *salesRepository) Replace(ctx context.Context, tenant string, records []domain.SalesRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := r.conn.Builder().
			Delete(salesTable).
			Where("tenant = ?", tenant).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover vendas do tenant %s: %w", tenant, err)
		}

		return r.insert(ctx, tx, tenant, records)
	})
}

func (r *salesRepository) Append(ctx context.Context, tenant string, records []domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return r.insert(ctx, tx, tenant, records)
	})
}

func (r *salesRepository) insert(ctx context.Context, q database.Queryer, tenant string, records []domain.SalesRecord) error {
	importedAt := r.now().UTC()
	columns := append([]string{"tenant"}, salesColumns...)
	columns = append(columns, "imported_at")

	for start := 0; start < len(records); start += salesInsertBatchSize {
		end := start + salesInsertBatchSize
		if end > len(records) {
			end = len(records)
		}

		query := r.conn.Builder().
			Insert(salesTable).
			Columns(columns...)

		for _, record := range records[start:end] {
			query = query.Values(
				tenant,
				record.InvoiceDate,
				record.InvoiceNo,
				record.Customer,
				record.Salesman,
				record.Item,
				nullableFloat(record.Qty),
				nullableFloat(record.Amount),
				nullableString(record.ItemCategory),
				nullableString(record.City),
				nullableString(record.CustomerType),
				importedAt,
			)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao inserir vendas (%d-%d): %w", start, end, err)
		}
	}

	return nil
}

func (r *salesRepository) ListByTenant(ctx context.Context, tenant string) ([]domain.SalesRecord, error) {
	query, args, err := r.conn.Builder().
		Select(salesColumns...).
		From(salesTable).
		Where("tenant = ?", tenant).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func scanSalesRecord(rows *sql.Rows) (domain.SalesRecord, error) {
	var (
		invoiceDate, invoiceNo, customer, salesman, item sql.NullString
		qty, amount                                      sql.NullFloat64
		itemCategory, city, customerType                 sql.NullString
	)

	if err := rows.Scan(
		&invoiceDate,
		&invoiceNo,
		&customer,
		&salesman,
		&item,
		&qty,
		&amount,
		&itemCategory,
		&city,
		&customerType,
	); err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		InvoiceDate:  invoiceDate.String,
		InvoiceNo:    invoiceNo.String,
		Customer:     customer.String,
		Salesman:     salesman.String,
		Item:         item.String,
		Qty:          floatPtr(qty),
		Amount:       floatPtr(amount),
		ItemCategory: stringPtr(itemCategory),
		City:         stringPtr(city),
		CustomerType: stringPtr(customerType),
	}, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
