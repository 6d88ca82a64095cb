// Package importing transforma relatórios exportados em vendas persistidas por tenant
package importing

//go:generate mockgen -source=service.go -destination=mocks/importer.go -package=mocks

import (
	"context"
	"io"
	"time"

	"github.com/acis05/Pbiacis/infrastructure/repository"
	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/ingest"
	"github.com/acis05/Pbiacis/pkg/log"
	"github.com/pkg/errors"
)

// Quantidade de datas não reconhecidas exibidas no log
const unparsedSampleSize = 5

type Importer interface {
	Import(ctx context.Context, req ImportRequest) (*domain.ImportResult, error)
}

type ImportRequest struct {
	Tenant      string
	FileName    string
	Content     io.Reader
	ClearBefore bool // Substitui todas as vendas do tenant em vez de acrescentar
}

type Service struct {
	salesRepo repository.SalesRepository
	layout    ingest.Layout
	now       func() time.Time
}

func NewService(salesRepo repository.SalesRepository, layout ingest.Layout) Importer {
	return &Service{
		salesRepo: salesRepo,
		layout:    layout,
		now:       time.Now,
	}
}

func (s *Service) Import(ctx context.Context, req ImportRequest) (*domain.ImportResult, error) {
	if req.Tenant == "" {
		return nil, ErrMissingTenant
	}

	report, err := ingest.Parse(req.Content, s.layout)
	if err != nil {
		return nil, errors.WithMessage(ErrUnreadableDocument, err.Error())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"tenant":                req.Tenant,
		"file_name":             req.FileName,
		"import_rows":           report.Rows,
		"import_records":        len(report.Records),
		"import_skipped":        len(report.Skipped),
		"import_unparsed_dates": len(report.UnparsedDates),
	})

	if len(report.UnparsedDates) > 0 {
		sample := report.UnparsedDates
		if len(sample) > unparsedSampleSize {
			sample = sample[:unparsedSampleSize]
		}
		logger.Warnf("Datas não reconhecidas mantidas como texto: %q", sample)
	}

	if len(report.Records) == 0 && req.ClearBefore {
		logger.Warn("Importação recusada: arquivo sem linhas de venda")
		return nil, errors.Wrapf(ErrNoRecords, "arquivo %s", req.FileName)
	}

	if req.ClearBefore {
		err = s.salesRepo.Replace(ctx, req.Tenant, report.Records)
	} else {
		err = s.salesRepo.Append(ctx, req.Tenant, report.Records)
	}
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar vendas importadas")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	logger.Info("Importação concluída")

	return &domain.ImportResult{
		FileName:      req.FileName,
		Tenant:        req.Tenant,
		Rows:          report.Rows,
		Imported:      len(report.Records),
		Skipped:       len(report.Skipped),
		UnparsedDates: len(report.UnparsedDates),
		Replaced:      req.ClearBefore,
		ImportedAt:    s.now(),
	}, nil
}
