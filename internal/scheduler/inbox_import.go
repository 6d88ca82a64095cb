// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/acis05/Pbiacis/internal/config"
	"github.com/acis05/Pbiacis/internal/usecases/importing"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const (
	// InboxImportJob é o nome do job usado na rota de disparo manual
	InboxImportJob = "inbox-import"

	processedDir = "processed"
	failedDir    = "failed"
)

// Extensões aceitas; o Accurate exporta HTML com extensão .xls
var inboxExtensions = map[string]bool{
	".html": true,
	".htm":  true,
	".xls":  true,
}

type InboxImportConfig struct {
	CronSchedule string
	Dir          string
	Tenant       string
	ClearBefore  bool
	SyncEnabled  bool
}

// InboxRunSummary resume uma execução do job
type InboxRunSummary struct {
	Processed []string `json:"processed"`
	Failed    []string `json:"failed"`
	Imported  int      `json:"imported"`
}

type InboxImportService struct {
	scheduler           *gocron.Scheduler
	importer            importing.Importer
	config              InboxImportConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             *InboxRunSummary
	now                 func() time.Time
}

func NewInboxImportService(importer importing.Importer, cfg *config.Config) *InboxImportService {
	inboxConfig := InboxImportConfig{
		CronSchedule: cfg.InboxImport.CronSchedule,
		Dir:          cfg.InboxImport.Dir,
		Tenant:       cfg.InboxImport.Tenant,
		ClearBefore:  cfg.InboxImport.ClearBefore,
		SyncEnabled:  cfg.InboxImport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"job_cron": inboxConfig.CronSchedule,
		"job_dir":  inboxConfig.Dir,
		"tenant":   inboxConfig.Tenant,
	}).Info("Configuração do agendador de importação da caixa de entrada carregada")

	return &InboxImportService{
		scheduler: gocron.NewScheduler(time.Local),
		importer:  importer,
		config:    inboxConfig,
		now:       time.Now,
	}
}

func (s *InboxImportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de importação da caixa de entrada desabilitada por configuração")
		return nil
	}

	logrus.WithField("job_cron", s.config.CronSchedule).Info("Iniciando cron de importação da caixa de entrada")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunInboxImport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na importação da caixa de entrada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação da caixa de entrada: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de importação da caixa de entrada")
		s.scheduler.Stop()
	}()

	return nil
}

// RunInboxImport importa os arquivos pendentes em ordem alfabética. Com ClearBefore,
// apenas o primeiro arquivo importado substitui as vendas; os seguintes são acrescentados.
func (s *InboxImportService) RunInboxImport(ctx context.Context) (*InboxRunSummary, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Importação da caixa de entrada já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	summary := &InboxRunSummary{
		Processed: make([]string, 0),
		Failed:    make([]string, 0),
	}

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastRun = summary
		s.syncMutex.Unlock()
	}()

	files, err := s.pendingFiles()
	if err != nil {
		return summary, err
	}

	if len(files) == 0 {
		logrus.Debug("Nenhum arquivo pendente na caixa de entrada")
		return summary, nil
	}

	clearBefore := s.config.ClearBefore
	for _, name := range files {
		imported, err := s.importFile(ctx, name, clearBefore)
		if err != nil {
			logrus.WithError(err).WithField("file_name", name).Error("Erro ao importar arquivo da caixa de entrada")
			summary.Failed = append(summary.Failed, name)
			s.moveFile(name, failedDir)
			continue
		}

		clearBefore = false
		summary.Imported += imported
		summary.Processed = append(summary.Processed, name)
		s.moveFile(name, processedDir)
	}

	logrus.WithFields(logrus.Fields{
		"job_processed": len(summary.Processed),
		"job_failed":    len(summary.Failed),
		"job_imported":  summary.Imported,
	}).Info("Importação da caixa de entrada concluída")

	return summary, nil
}

func (s *InboxImportService) pendingFiles() ([]string, error) {
	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao listar caixa de entrada %s: %w", s.config.Dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if inboxExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

func (s *InboxImportService) importFile(ctx context.Context, name string, clearBefore bool) (int, error) {
	file, err := os.Open(filepath.Join(s.config.Dir, name))
	if err != nil {
		return 0, fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer file.Close()

	result, err := s.importer.Import(ctx, importing.ImportRequest{
		Tenant:      s.config.Tenant,
		FileName:    name,
		Content:     file,
		ClearBefore: clearBefore,
	})
	if err != nil {
		return 0, err
	}

	return result.Imported, nil
}

// moveFile tira o arquivo da caixa de entrada, prefixando com o horário para evitar colisões
func (s *InboxImportService) moveFile(name, subdir string) {
	target := filepath.Join(s.config.Dir, subdir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		logrus.WithError(err).WithField("file_name", name).Error("Erro ao criar diretório de destino")
		return
	}

	destination := filepath.Join(target, s.now().Format("20060102-150405")+"_"+name)
	if err := os.Rename(filepath.Join(s.config.Dir, name), destination); err != nil {
		logrus.WithError(err).WithField("file_name", name).Error("Erro ao mover arquivo da caixa de entrada")
	}
}

// TriggerManualSync inicia uma importação em segundo plano; retorna falso se já houver uma em andamento
func (s *InboxImportService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importação da caixa de entrada já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando importação manual da caixa de entrada")
	go func() {
		if _, err := s.RunInboxImport(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Error("Erro na importação manual da caixa de entrada")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *InboxImportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"inbox_dir":              s.config.Dir,
		"tenant":                 s.config.Tenant,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               s.lastRun,
	}
}
