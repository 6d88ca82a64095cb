package handler

import (
	"context"
	"net/http"

	"github.com/acis05/Pbiacis/internal/scheduler"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJob é o contrato dos agendadores disparáveis pela API
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices mapeia o nome do job para o serviço correspondente
type CronJobServices map[string]CronJob

func NewCronJobServices(inbox *scheduler.InboxImportService) CronJobServices {
	services := CronJobServices{}
	if inbox != nil {
		services[scheduler.InboxImportJob] = inbox
	}
	return services
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, exists := services[cronType]
		if !exists {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": []string{scheduler.InboxImportJob},
			})
			return
		}

		logrus.WithField("job_type", cronType).Info("Disparo manual de cron job")

		if !job.TriggerManualSync(r.Context()) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
