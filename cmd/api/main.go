package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/datasource"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	logrus.Debug("Configuração do dataset: ", utils.PrettyJson(cfg.Dataset))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := recordSource(ctx, cfg)

	// Record Store: snapshot em memória do dataset de vendas
	datasetService := dataset.NewService(source)
	if err := datasetService.Refresh(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro na carga inicial do dataset de vendas")
	}

	reportService := reporting.NewService(cfg, datasetService)

	refreshService := scheduler.NewDatasetRefreshService(datasetService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server, err := api.New(cfg, reportService, datasetService, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// recordSource seleciona a origem do dataset conforme a configuração
func recordSource(ctx context.Context, cfg *config.Config) datasource.RecordSource {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		return repository.NewSaleRecordRepository(pgconn(ctx, cfg.Database))
	case config.SourceXLSX:
		return datasource.NewExcelSource(cfg.Dataset.Path, cfg.Dataset.Sheet)
	case config.SourceCSV:
		return datasource.NewCSVSource(cfg.Dataset.Path)
	default:
		logrus.Fatalf("Origem de dataset desconhecida: %s", cfg.Dataset.Source)
		return nil
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
