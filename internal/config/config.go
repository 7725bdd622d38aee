package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Upstream   `yaml:"upstream"`
		Polling    `yaml:"polling"`
		PG         `yaml:"postgres"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	}

	GRPC struct {
		Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	Upstream struct {
		BaseURL       string        `env-required:"true" yaml:"base_url" env:"UPSTREAM_BASE_URL"`
		Timeout       time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT" env-default:"10s"`
		RateLimit     int           `yaml:"rate_limit" env:"UPSTREAM_RATE_LIMIT" env-default:"20"`
		RetryAttempts int           `yaml:"retry_attempts" env:"UPSTREAM_RETRY_ATTEMPTS" env-default:"3"`
		RetryDelay    time.Duration `yaml:"retry_delay" env:"UPSTREAM_RETRY_DELAY" env-default:"500ms"`
	}

	Polling struct {
		LogsInterval    time.Duration `yaml:"logs_interval" env:"POLL_LOGS_INTERVAL" env-default:"10s"`
		AlertsInterval  time.Duration `yaml:"alerts_interval" env:"POLL_ALERTS_INTERVAL" env-default:"5s"`
		MetricsInterval time.Duration `yaml:"metrics_interval" env:"POLL_METRICS_INTERVAL" env-default:"10s"`
		IdleTimeout     time.Duration `yaml:"idle_timeout" env:"POLL_IDLE_TIMEOUT" env-default:"2m"`
		RecentLimit     int           `yaml:"recent_limit" env:"POLL_RECENT_LIMIT" env-default:"100"`
		FilterLimit     int           `yaml:"filter_limit" env:"POLL_FILTER_LIMIT" env-default:"50"`
	}

	PG struct {
		Enabled     bool   `yaml:"enabled" env:"PG_ENABLED" env-default:"false"`
		MaxPoolSize int    `yaml:"max_pool_size" env:"MAX_POOL_SIZE" env-default:"2"`
		URL         string `env:"PG_URL"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"notifications"`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debugf("Env file is not loaded: %v", err)
	}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	return Load(pathToConfig)
}

func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
