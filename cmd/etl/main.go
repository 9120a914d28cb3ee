package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/database/postgres"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/repository"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/api"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/config"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/pipeline"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/scheduler"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/extracting"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/loading"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/transforming"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	carSalesRepo := repository.NewCarSalesRepository(pgConn, cfg.Dataset.TargetTable)
	runRepo := repository.NewETLRunRepository(pgConn)

	pipelineService := pipeline.New(
		extracting.NewService(),
		transforming.NewService(),
		loading.NewService(carSalesRepo),
		runRepo,
		cfg,
	)

	// One-shot mode: run the pipeline once and exit with its status
	if !cfg.ETLSync.Enabled {
		if _, err := pipelineService.Run(ctx); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	// Scheduled mode: keep the process alive, re-running the pipeline on the
	// configured cron and serving the status API
	syncService := scheduler.NewETLSyncService(pipelineService, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Error starting the ETL sync scheduler")
	}

	server, err := api.New(cfg, runRepo, carSalesRepo, syncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and behavior
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the database connection used by the whole run
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error checking the PostgreSQL connection")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
