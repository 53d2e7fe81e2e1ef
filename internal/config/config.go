package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de origem de dados suportados para o dataset de vendas
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dataset configura a origem dos registros de venda
type Dataset struct {
	Source string `mapstructure:"dataset_source"` // csv, xlsx ou postgres
	Path   string `mapstructure:"dataset_path"`   // caminho do arquivo para csv/xlsx
	Sheet  string `mapstructure:"dataset_sheet"`  // aba da planilha; vazio usa a primeira
}

// DatasetRefresh configura a recarga periódica do dataset
type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

// Report configura os padrões do pipeline quando a camada de seleção não
// envia granularidade, métrica ou top N
type Report struct {
	DefaultGranularity   string `mapstructure:"report_default_granularity"`
	DefaultRankingMetric string `mapstructure:"report_default_ranking_metric"`
	DefaultTopN          int    `mapstructure:"report_default_top_n"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SOURCE", SourceCSV)
	viper.SetDefault("DATASET_PATH", "sales.csv")
	viper.SetDefault("DATASET_SHEET", "")

	// Recarga diária às 5h da manhã, desabilitada por padrão
	viper.SetDefault("DATASET_REFRESH_CRON", "0 5 * * *")
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("REPORT_DEFAULT_GRANULARITY", "monthly")
	viper.SetDefault("REPORT_DEFAULT_RANKING_METRIC", "revenue")
	viper.SetDefault("REPORT_DEFAULT_TOP_N", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Leitura do .env pelo Viper é opcional, já que usamos godotenv
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
