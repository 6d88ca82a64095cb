package repository

//go:generate mockgen -source=access_code.go -destination=mocks/access_code.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/acis05/Pbiacis/infrastructure/database"
	"github.com/acis05/Pbiacis/internal/domain"
)

const accessCodesTable = "access_codes"

var accessCodeColumns = []string{
	"id",
	"code",
	"tenant",
	"customer_name",
	"active",
	"valid_from",
	"valid_to",
	"created_at",
	"updated_at",
}

type AccessCodeRepository interface {
	// Upsert cria o código ou atualiza os dados quando ele já existe
	Upsert(ctx context.Context, code domain.AccessCode) (*domain.AccessCode, error)
	// GetActive retorna o código quando está ativo e dentro da validade em today (YYYY-MM-DD).
	// Retorna nil quando não há código válido.
	GetActive(ctx context.Context, code string, today string) (*domain.AccessCode, error)
	GetByCode(ctx context.Context, code string) (*domain.AccessCode, error)
	List(ctx context.Context) ([]domain.AccessCode, error)
}

type accessCodeRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewAccessCodeRepository(conn database.Conn) AccessCodeRepository {
	return &accessCodeRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *accessCodeRepository) Upsert(ctx context.Context, code domain.AccessCode) (*domain.AccessCode, error) {
	now := r.now().UTC()

	query, args, err := r.conn.Builder().
		Insert(accessCodesTable).
		Columns("code", "tenant", "customer_name", "active", "valid_from", "valid_to", "created_at", "updated_at").
		Values(
			code.Code,
			code.Tenant,
			code.CustomerName,
			code.Active,
			nullableString(code.ValidFrom),
			nullableString(code.ValidTo),
			now,
			now,
		).
		Suffix(`
			ON CONFLICT (code) DO UPDATE SET
				tenant = excluded.tenant,
				customer_name = excluded.customer_name,
				active = excluded.active,
				valid_from = excluded.valid_from,
				valid_to = excluded.valid_to,
				updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao salvar código de acesso: %w", err)
	}

	return r.GetByCode(ctx, code.Code)
}

func (r *accessCodeRepository) GetActive(ctx context.Context, code string, today string) (*domain.AccessCode, error) {
	return r.getOne(ctx, squirrel.And{
		squirrel.Eq{"code": code},
		squirrel.Eq{"active": true},
		squirrel.Or{squirrel.Eq{"valid_from": nil}, squirrel.LtOrEq{"valid_from": today}},
		squirrel.Or{squirrel.Eq{"valid_to": nil}, squirrel.GtOrEq{"valid_to": today}},
	})
}

func (r *accessCodeRepository) GetByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code})
}

func (r *accessCodeRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.AccessCode, error) {
	query, args, err := r.conn.Builder().
		Select(accessCodeColumns...).
		From(accessCodesTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	code, err := scanAccessCode(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear código de acesso: %w", err)
	}

	return code, nil
}

func (r *accessCodeRepository) List(ctx context.Context) ([]domain.AccessCode, error) {
	query, args, err := r.conn.Builder().
		Select(accessCodeColumns...).
		From(accessCodesTable).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	codes := make([]domain.AccessCode, 0)
	for rows.Next() {
		code, err := scanAccessCode(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear código de acesso: %w", err)
		}
		codes = append(codes, *code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return codes, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccessCode(row rowScanner) (*domain.AccessCode, error) {
	var (
		code                 domain.AccessCode
		validFrom, validTo   sql.NullString
		createdAt, updatedAt timestamp
	)

	if err := row.Scan(
		&code.ID,
		&code.Code,
		&code.Tenant,
		&code.CustomerName,
		&code.Active,
		&validFrom,
		&validTo,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	code.ValidFrom = stringPtr(validFrom)
	code.ValidTo = stringPtr(validTo)
	code.CreatedAt = createdAt.Time
	code.UpdatedAt = updatedAt.Time

	return &code, nil
}
