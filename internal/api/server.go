package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acis05/Pbiacis/internal/api/handler"
	"github.com/acis05/Pbiacis/internal/api/handler/router"
	"github.com/acis05/Pbiacis/internal/config"
	"github.com/acis05/Pbiacis/internal/scheduler"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/internal/usecases/importing"
	"github.com/acis05/Pbiacis/internal/usecases/insighting"
	"github.com/acis05/Pbiacis/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com a cadeia de middlewares global
func NewHandler(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	importer importing.Importer,
	insighter insighting.Insighter,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.AccessRoutes(authenticator, cfg.Auth.CookieName)...),
		router.WithRoutes(handler.Sales(importer, insighter, cfg.Import.MaxUploadBytes())...),
		router.WithRoutes(handler.Insights(insighter)...),
		router.WithRoutes(handler.AccessCodes(authenticator)...),
		router.WithRoutes(handler.CronJobs(cronServices, authenticator)...),
	)

	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator, cfg.Auth.CookieName),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	importer importing.Importer,
	insighter insighting.Insighter,
	inboxImportService *scheduler.InboxImportService,
) (*Server, error) {
	h := NewHandler(cfg, authenticator, importer, insighter, handler.NewCronJobServices(inboxImportService))

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
