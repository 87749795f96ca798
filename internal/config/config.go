package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sortsense/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	S3        S3Config
	Vision    VisionConfig
	Warehouse WarehouseConfig
	Summary   SummaryConfig
	Log       LogConfig
	CORS      CORSConfig

	// ModeOverride forces cloud or local mode regardless of credential
	// presence. Empty means auto-detect.
	ModeOverride string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds AWS S3 settings for upload archival.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// VisionConfig holds the image classification and invoice OCR adapter
// settings. Provider selects the classifier, OCRProvider the invoice
// parser; both share the AWS region.
type VisionConfig struct {
	Provider    string `mapstructure:"provider"`
	OCRProvider string `mapstructure:"ocr_provider"`
	Region      string `mapstructure:"region"`
	ModelID     string `mapstructure:"model_id"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// WarehouseConfig holds the event warehouse connection settings.
// Driver selects snowflake or postgres; the snowflake fields mirror the
// standard connector parameters.
type WarehouseConfig struct {
	Driver string `mapstructure:"driver"`

	// Snowflake
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	Account   string `mapstructure:"account"`
	Warehouse string `mapstructure:"warehouse"`
	Database  string `mapstructure:"database"`
	Schema    string `mapstructure:"schema"`
	Role      string `mapstructure:"role"`

	// Postgres
	PGHost    string `mapstructure:"pg_host"`
	PGPort    int    `mapstructure:"pg_port"`
	PGUser    string `mapstructure:"pg_user"`
	PGPass    string `mapstructure:"pg_password"`
	PGName    string `mapstructure:"pg_name"`
	PGSSLMode string `mapstructure:"pg_sslmode"`
	MaxOpen   int    `mapstructure:"max_open"`
	MaxIdle   int    `mapstructure:"max_idle"`
}

// Configured reports whether warehouse credentials are present for the
// selected driver.
func (w *WarehouseConfig) Configured() bool {
	switch w.Driver {
	case "postgres":
		return w.PGHost != "" && w.PGUser != ""
	default:
		return w.Account != "" && w.User != "" && w.Password != ""
	}
}

// PostgresDSN returns the Postgres connection string.
func (w *WarehouseConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		w.PGUser, w.PGPass, w.PGHost, w.PGPort, w.PGName, w.PGSSLMode,
	)
}

// SummaryConfig holds the text-generation adapter settings for tips and
// KPI summaries.
type SummaryConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Mode resolves the effective operating mode. Cloud mode requires warehouse
// credentials; anything else runs fully local with mock adapters. Resolved
// once at startup, never per request.
func (c *Config) Mode() domain.Mode {
	switch c.ModeOverride {
	case string(domain.ModeCloud):
		return domain.ModeCloud
	case string(domain.ModeLocal):
		return domain.ModeLocal
	}
	if c.Warehouse.Configured() {
		return domain.ModeCloud
	}
	return domain.ModeLocal
}

// Load reads configuration from environment variables with the SORTSENSE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SORTSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// S3 defaults
	v.SetDefault("s3.region", "us-west-2")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)

	// Vision defaults
	v.SetDefault("vision.provider", "bedrock")
	v.SetDefault("vision.ocr_provider", "textract")
	v.SetDefault("vision.region", "us-west-2")
	v.SetDefault("vision.model_id", "meta.llama3-2-11b-vision-instruct-v1:0")
	v.SetDefault("vision.timeout_secs", 60)

	// Warehouse defaults
	v.SetDefault("warehouse.driver", "snowflake")
	v.SetDefault("warehouse.user", "")
	v.SetDefault("warehouse.password", "")
	v.SetDefault("warehouse.account", "")
	v.SetDefault("warehouse.warehouse", "DEFAULT_WH")
	v.SetDefault("warehouse.database", "SORTSENSE")
	v.SetDefault("warehouse.schema", "PUBLIC")
	v.SetDefault("warehouse.role", "")
	v.SetDefault("warehouse.pg_host", "")
	v.SetDefault("warehouse.pg_port", 5432)
	v.SetDefault("warehouse.pg_user", "")
	v.SetDefault("warehouse.pg_password", "")
	v.SetDefault("warehouse.pg_name", "sortsense")
	v.SetDefault("warehouse.pg_sslmode", "disable")
	v.SetDefault("warehouse.max_open", 10)
	v.SetDefault("warehouse.max_idle", 5)

	// Summary defaults
	v.SetDefault("summary.provider", "writer")
	v.SetDefault("summary.api_key", "")
	v.SetDefault("summary.model", "palmyra-x5")
	v.SetDefault("summary.timeout_secs", 12)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	v.SetDefault("mode", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "SORTSENSE_SERVER_PORT",
		"server.read_timeout":   "SORTSENSE_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "SORTSENSE_SERVER_WRITE_TIMEOUT",
		"server.environment":    "SORTSENSE_SERVER_ENVIRONMENT",
		"s3.region":             "SORTSENSE_S3_REGION",
		"s3.bucket":             "SORTSENSE_S3_BUCKET",
		"s3.endpoint":           "SORTSENSE_S3_ENDPOINT",
		"s3.access_key":         "SORTSENSE_S3_ACCESS_KEY",
		"s3.secret_key":         "SORTSENSE_S3_SECRET_KEY",
		"s3.max_file_size_mb":   "SORTSENSE_S3_MAX_FILE_SIZE_MB",
		"vision.provider":       "SORTSENSE_VISION_PROVIDER",
		"vision.ocr_provider":   "SORTSENSE_VISION_OCR_PROVIDER",
		"vision.region":         "SORTSENSE_VISION_REGION",
		"vision.model_id":       "SORTSENSE_VISION_MODEL_ID",
		"vision.timeout_secs":   "SORTSENSE_VISION_TIMEOUT_SECS",
		"warehouse.driver":      "SORTSENSE_WAREHOUSE_DRIVER",
		"warehouse.user":        "SORTSENSE_WAREHOUSE_USER",
		"warehouse.password":    "SORTSENSE_WAREHOUSE_PASSWORD",
		"warehouse.account":     "SORTSENSE_WAREHOUSE_ACCOUNT",
		"warehouse.warehouse":   "SORTSENSE_WAREHOUSE_WAREHOUSE",
		"warehouse.database":    "SORTSENSE_WAREHOUSE_DATABASE",
		"warehouse.schema":      "SORTSENSE_WAREHOUSE_SCHEMA",
		"warehouse.role":        "SORTSENSE_WAREHOUSE_ROLE",
		"warehouse.pg_host":     "SORTSENSE_WAREHOUSE_PG_HOST",
		"warehouse.pg_port":     "SORTSENSE_WAREHOUSE_PG_PORT",
		"warehouse.pg_user":     "SORTSENSE_WAREHOUSE_PG_USER",
		"warehouse.pg_password": "SORTSENSE_WAREHOUSE_PG_PASSWORD",
		"warehouse.pg_name":     "SORTSENSE_WAREHOUSE_PG_NAME",
		"warehouse.pg_sslmode":  "SORTSENSE_WAREHOUSE_PG_SSLMODE",
		"warehouse.max_open":    "SORTSENSE_WAREHOUSE_MAX_OPEN",
		"warehouse.max_idle":    "SORTSENSE_WAREHOUSE_MAX_IDLE",
		"summary.provider":      "SORTSENSE_SUMMARY_PROVIDER",
		"summary.api_key":       "SORTSENSE_SUMMARY_API_KEY",
		"summary.model":         "SORTSENSE_SUMMARY_MODEL",
		"summary.timeout_secs":  "SORTSENSE_SUMMARY_TIMEOUT_SECS",
		"log.level":             "SORTSENSE_LOG_LEVEL",
		"log.format":            "SORTSENSE_LOG_FORMAT",
		"cors.allowed_origins":  "SORTSENSE_CORS_ALLOWED_ORIGINS",
		"mode":                  "SORTSENSE_MODE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SORTSENSE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SORTSENSE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Vision = VisionConfig{
		Provider:    v.GetString("vision.provider"),
		OCRProvider: v.GetString("vision.ocr_provider"),
		Region:      v.GetString("vision.region"),
		ModelID:     v.GetString("vision.model_id"),
		TimeoutSecs: v.GetInt("vision.timeout_secs"),
	}
	cfg.Warehouse = WarehouseConfig{
		Driver:    v.GetString("warehouse.driver"),
		User:      v.GetString("warehouse.user"),
		Password:  v.GetString("warehouse.password"),
		Account:   v.GetString("warehouse.account"),
		Warehouse: v.GetString("warehouse.warehouse"),
		Database:  v.GetString("warehouse.database"),
		Schema:    v.GetString("warehouse.schema"),
		Role:      v.GetString("warehouse.role"),
		PGHost:    v.GetString("warehouse.pg_host"),
		PGPort:    v.GetInt("warehouse.pg_port"),
		PGUser:    v.GetString("warehouse.pg_user"),
		PGPass:    v.GetString("warehouse.pg_password"),
		PGName:    v.GetString("warehouse.pg_name"),
		PGSSLMode: v.GetString("warehouse.pg_sslmode"),
		MaxOpen:   v.GetInt("warehouse.max_open"),
		MaxIdle:   v.GetInt("warehouse.max_idle"),
	}
	cfg.Summary = SummaryConfig{
		Provider:    v.GetString("summary.provider"),
		APIKey:      v.GetString("summary.api_key"),
		Model:       v.GetString("summary.model"),
		TimeoutSecs: v.GetInt("summary.timeout_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.ModeOverride = v.GetString("mode")

	return cfg, nil
}
