package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/corray333/backend-labs/cafe/pkg/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"logger.level":  "info",
	"logger.format": logger.FormatText,

	"server.http.port":                          "8080",
	"server.http.cors.allowed_origins":          []string{"*"},
	"server.http.cors.allowed_methods":          []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	"server.http.cors.allowed_headers":          []string{"Accept", "Content-Type", "X-Request-Id"},
	"server.http.cors.max_age":                  300,
	"server.grpc.port":                          "9090",
	"server.grpc.keepalive.max_connection_idle": 15,
	"server.grpc.keepalive.time":                5,
	"server.grpc.keepalive.timeout":             1,
	"server.grpc.keepalive.min_time":            5,

	"cafeapi.base_url":        "http://localhost:8000",
	"cafeapi.timeout_seconds": 10,
	"cafeapi.refresh_seconds": 30,

	"state.driver":         "memory",
	"rewards.catalog_path": "",

	"postgres.host":    "postgres",
	"postgres.port":    5432,
	"postgres.sslmode": "disable",
	"redis.addr":       "redis:6379",

	"events.enabled":                        false,
	"rabbitmq.exchange":                     "cafe.events",
	"rabbitmq.outbox.enabled":               true,
	"rabbitmq.outbox.poll_interval_seconds": 10,
	"rabbitmq.outbox.batch_size":            100,

	"jaeger.endpoint": "http://jaeger:14268/api/traces",
	"otel.enabled":    false,
}

// MustInit loads .env and config.yaml, sets up the default logger and watches the config file.
func MustInit() {
	if err := Init("/etc/cafe-svc", "."); err != nil {
		panic("error while reading config: " + err.Error())
	}
	SetupLogger()
	Watch()
}

// Init reads config.yaml from the first path that has it. Environment variables
// override file values: POSTGRES_PASSWORD sets postgres.password.
func Init(paths ...string) error {
	if err := godotenv.Load("./.env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error while loading .env file: %w", err)
	}

	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}

// Watch re-applies the log level whenever the config file changes.
func Watch() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.SetLevel(viper.GetString("logger.level"))
		slog.Info("Config reloaded", "file", e.Name, "level", logger.Level.Level().String())
	})
	viper.WatchConfig()
}
