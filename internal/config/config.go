package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Import      Import      `mapstructure:",squash"`
	InboxImport InboxImport `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Path     string `mapstructure:"database_path"` // Arquivo do SQLite
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	DefaultTenant string `mapstructure:"default_tenant"`
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
	CookieName   string        `mapstructure:"access_cookie_name"`
	AdminKeyHash string        `mapstructure:"admin_key_hash"` // Hash bcrypt da chave de administração
	// Códigos criados na inicialização, no formato codigo=cliente
	SeedAccessCodes []string `mapstructure:"seed_access_codes"`
}

type Import struct {
	LayoutColumns     []string `mapstructure:"import_layout_columns"` // Pares campo=posição
	LayoutMinCells    int      `mapstructure:"import_layout_min_cells"`
	LayoutHeaderLabel string   `mapstructure:"import_layout_header_label"`
	MaxUploadMB       int64    `mapstructure:"import_max_upload_mb"`
}

type InboxImport struct {
	CronSchedule string `mapstructure:"inbox_import_cron"`
	Dir          string `mapstructure:"inbox_import_dir"`
	Tenant       string `mapstructure:"inbox_import_tenant"`
	ClearBefore  bool   `mapstructure:"inbox_import_clear_before"`
	Enabled      bool   `mapstructure:"inbox_import_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pbiacis?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "sales.db")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")
	viper.SetDefault("ACCESS_COOKIE_NAME", "access_token")
	viper.SetDefault("ADMIN_KEY_HASH", "")
	viper.SetDefault("SEED_ACCESS_CODES", "DEMO-1234=Demo Customer,ABC-2025=Customer Contoh")

	// Layout do relatório "Rincian Penjualan" exportado pelo Accurate
	viper.SetDefault("IMPORT_LAYOUT_COLUMNS", "invoice_date=1,invoice_no=5,customer=9,salesman=13,item=17,qty=21,amount=25,item_category=29,city=33,customer_type=37")
	viper.SetDefault("IMPORT_LAYOUT_MIN_CELLS", 38)
	viper.SetDefault("IMPORT_LAYOUT_HEADER_LABEL", "Date")
	viper.SetDefault("IMPORT_MAX_UPLOAD_MB", 32)

	viper.SetDefault("DEFAULT_TENANT", "default")

	viper.SetDefault("INBOX_IMPORT_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("INBOX_IMPORT_DIR", "inbox")
	viper.SetDefault("INBOX_IMPORT_TENANT", "default")
	viper.SetDefault("INBOX_IMPORT_CLEAR_BEFORE", true)
	viper.SetDefault("INBOX_IMPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if config.Database.Driver == "postgres" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	if config.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_TTL deve ser positivo: %s", config.Auth.TokenTTL)
	}

	return config, nil
}

// MaxUploadBytes converte o limite de upload configurado em bytes
func (i Import) MaxUploadBytes() int64 {
	return i.MaxUploadMB << 20
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
