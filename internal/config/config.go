package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Service ServiceConfig
	Log     LogConfig
	CORS    CORSConfig
	Tariffs TariffsConfig
	S3      S3Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	Environment     string        `mapstructure:"environment"`
}

// ServiceConfig holds the identity reported by / and /health.
type ServiceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
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

// TariffsConfig points at the tariff data source.
type TariffsConfig struct {
	// Source is a local path or an s3://bucket/key URI ending in .json or .xlsx.
	Source string `mapstructure:"source"`
	// Sheet selects the worksheet for .xlsx sources; empty means the first sheet.
	Sheet string `mapstructure:"sheet"`
}

// S3Config holds AWS S3 settings used by s3:// tariff sources.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Load reads configuration from environment variables with the LOGISTICS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LOGISTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3030")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.environment", "development")

	v.SetDefault("service.name", "LOGISTICS-SERVICE")
	v.SetDefault("service.version", "1.0.0")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("tariffs.source", "data/tariffs.json")
	v.SetDefault("tariffs.sheet", "")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "LOGISTICS_SERVER_PORT",
		"server.read_timeout":     "LOGISTICS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "LOGISTICS_SERVER_WRITE_TIMEOUT",
		"server.idle_timeout":     "LOGISTICS_SERVER_IDLE_TIMEOUT",
		"server.shutdown_timeout": "LOGISTICS_SERVER_SHUTDOWN_TIMEOUT",
		"server.max_body_bytes":   "LOGISTICS_SERVER_MAX_BODY_BYTES",
		"server.environment":      "LOGISTICS_SERVER_ENVIRONMENT",
		"service.name":            "LOGISTICS_SERVICE_NAME",
		"service.version":         "LOGISTICS_SERVICE_VERSION",
		"log.level":               "LOGISTICS_LOG_LEVEL",
		"log.format":              "LOGISTICS_LOG_FORMAT",
		"cors.allowed_origins":    "LOGISTICS_CORS_ALLOWED_ORIGINS",
		"tariffs.source":          "LOGISTICS_TARIFFS_SOURCE",
		"tariffs.sheet":           "LOGISTICS_TARIFFS_SHEET",
		"s3.region":               "LOGISTICS_S3_REGION",
		"s3.endpoint":             "LOGISTICS_S3_ENDPOINT",
		"s3.access_key":           "LOGISTICS_S3_ACCESS_KEY",
		"s3.secret_key":           "LOGISTICS_S3_SECRET_KEY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LOGISTICS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LOGISTICS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		IdleTimeout:     v.GetDuration("server.idle_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		MaxBodyBytes:    v.GetInt64("server.max_body_bytes"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Service = ServiceConfig{
		Name:    v.GetString("service.name"),
		Version: v.GetString("service.version"),
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
	cfg.Tariffs = TariffsConfig{
		Source: v.GetString("tariffs.source"),
		Sheet:  v.GetString("tariffs.sheet"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	return cfg, nil
}
