package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Upstream       Upstream       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Upstream concentra os parâmetros da API remota de vendas/clientes. Os caps
// de página (50 para vendas, 20 para clientes) limitam o pior caso contra uma
// API com paginação quebrada; são herdados do painel original e por isso
// configuráveis em vez de fixos no código.
type Upstream struct {
	BaseURL               string `mapstructure:"upstream_base_url"`
	RequestTimeoutSeconds int    `mapstructure:"upstream_request_timeout_seconds"`
	SalesPageLimit        int    `mapstructure:"upstream_sales_page_limit"`
	SalesMaxPages         int    `mapstructure:"upstream_sales_max_pages"`
	SalesTotalFloor       int    `mapstructure:"upstream_sales_total_floor"`
	ClientsPageLimit      int    `mapstructure:"upstream_clients_page_limit"`
	ClientsMaxPages       int    `mapstructure:"upstream_clients_max_pages"`
	ClientsTotalFloor     int    `mapstructure:"upstream_clients_total_floor"`
	PageDelayMS           int    `mapstructure:"upstream_page_delay_ms"`
}

// Auth guarda a credencial única do operador e o segredo do token de sessão.
type Auth struct {
	AdminEmail    string `mapstructure:"auth_admin_email"`
	AdminPassword string `mapstructure:"auth_admin_password"`
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("UPSTREAM_BASE_URL", "https://host.pauloenterprise.com.br")
	viper.SetDefault("UPSTREAM_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("UPSTREAM_SALES_PAGE_LIMIT", 100)
	viper.SetDefault("UPSTREAM_SALES_MAX_PAGES", 50)
	viper.SetDefault("UPSTREAM_SALES_TOTAL_FLOOR", 1000)
	viper.SetDefault("UPSTREAM_CLIENTS_PAGE_LIMIT", 50)
	viper.SetDefault("UPSTREAM_CLIENTS_MAX_PAGES", 20)
	viper.SetDefault("UPSTREAM_CLIENTS_TOTAL_FLOOR", 200)
	viper.SetDefault("UPSTREAM_PAGE_DELAY_MS", 100)

	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@pauloenterprise.com.br")
	viper.SetDefault("AUTH_ADMIN_PASSWORD", "change_me")
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("DATASET_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
}

// RequestTimeout converte o timeout por página para time.Duration.
func (u Upstream) RequestTimeout() time.Duration {
	return time.Duration(u.RequestTimeoutSeconds) * time.Second
}

// PageDelay é a pausa fixa entre páginas a partir da segunda página.
func (u Upstream) PageDelay() time.Duration {
	return time.Duration(u.PageDelayMS) * time.Millisecond
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
