package main

import (
	"context"

	"github.com/acis05/Pbiacis/infrastructure/database"
	"github.com/acis05/Pbiacis/infrastructure/migration"
	"github.com/acis05/Pbiacis/infrastructure/repository"
	"github.com/acis05/Pbiacis/internal/api"
	"github.com/acis05/Pbiacis/internal/config"
	"github.com/acis05/Pbiacis/internal/ingest"
	"github.com/acis05/Pbiacis/internal/scheduler"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/internal/usecases/importing"
	"github.com/acis05/Pbiacis/internal/usecases/insighting"
	"github.com/acis05/Pbiacis/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if err := migration.Run(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	layout, err := ingest.ParseLayout(cfg.Import.LayoutColumns, cfg.Import.LayoutMinCells, cfg.Import.LayoutHeaderLabel)
	if err != nil {
		logrus.WithError(err).Fatal("Layout de importação inválido")
	}

	salesRepo := repository.NewSalesRepository(conn)
	accessCodeRepo := repository.NewAccessCodeRepository(conn)

	authenticator := authenticating.NewService(accessCodeRepo, cfg)
	if err := authenticator.SeedCodes(ctx, cfg.Auth.SeedAccessCodes); err != nil {
		logrus.WithError(err).Fatal("Erro ao garantir códigos de acesso iniciais")
	}

	importService := importing.NewService(salesRepo, layout)
	insightService := insighting.NewService(salesRepo)

	inboxImportService := scheduler.NewInboxImportService(importService, cfg)
	if err := inboxImportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação da caixa de entrada")
	} else {
		logrus.Info("Agendador de importação da caixa de entrada iniciado com sucesso")
	}

	server, err := api.New(cfg, authenticator, importService, insightService, inboxImportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre a conexão com o banco configurado ou encerra o processo
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
