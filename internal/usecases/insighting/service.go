// Package insighting entrega as vendas de um tenant e os agregados do painel
package insighting

//go:generate mockgen -source=service.go -destination=mocks/insighter.go -package=mocks

import (
	"context"

	"github.com/acis05/Pbiacis/infrastructure/repository"
	"github.com/acis05/Pbiacis/internal/analytics"
	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/pkg/errors"
)

type Insighter interface {
	GetSales(ctx context.Context, tenant string, filters domain.InsightFilters) ([]domain.SalesRecord, error)
	GetDashboard(ctx context.Context, tenant string, filters domain.InsightFilters) (*domain.Dashboard, error)
	// GetRanking retorna o top N de uma dimensão; limit <= 0 usa o padrão do painel
	GetRanking(ctx context.Context, tenant string, dimension domain.Dimension, filters domain.InsightFilters, limit int) ([]domain.RankedItem, error)
}

type Service struct {
	salesRepo repository.SalesRepository
}

func NewService(salesRepo repository.SalesRepository) Insighter {
	return &Service{
		salesRepo: salesRepo,
	}
}

func (s *Service) load(ctx context.Context, tenant string, filters domain.InsightFilters) ([]domain.SalesRecord, error) {
	records, err := s.salesRepo.ListByTenant(ctx, tenant)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar vendas do tenant %s", tenant)
	}
	return analytics.Filter(records, filters), nil
}

func (s *Service) GetSales(ctx context.Context, tenant string, filters domain.InsightFilters) ([]domain.SalesRecord, error) {
	return s.load(ctx, tenant, filters)
}

func (s *Service) GetDashboard(ctx context.Context, tenant string, filters domain.InsightFilters) (*domain.Dashboard, error) {
	records, err := s.load(ctx, tenant, filters)
	if err != nil {
		return nil, err
	}

	dashboard := analytics.Summarize(records)
	return &dashboard, nil
}

func (s *Service) GetRanking(ctx context.Context, tenant string, dimension domain.Dimension, filters domain.InsightFilters, limit int) ([]domain.RankedItem, error) {
	records, err := s.load(ctx, tenant, filters)
	if err != nil {
		return nil, err
	}
	return analytics.TopN(records, dimension, limit), nil
}
