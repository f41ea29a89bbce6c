package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqDispatchQueue string `env:"RABBITMQ_DISPATCH_QUEUE" envDefault:"notification_dispatch"`

	FcmEndpoint       url.URL       `env:"FCM_ENDPOINT" envDefault:"https://fcm.googleapis.com/fcm/send"`
	FcmServerKey      string        `env:"FCM_SERVER_KEY,required"`
	FcmRequestTimeout time.Duration `env:"FCM_REQUEST_TIMEOUT" envDefault:"10s"`

	// HourMatchPolicy controls how the scheduler matches reminder hours
	// against the current wall-clock time: "exact" or "prefix".
	HourMatchPolicy string `env:"HOUR_MATCH_POLICY" envDefault:"exact"`

	TickPeriod time.Duration `env:"TICK_PERIOD" envDefault:"1m"`

	Port           int      `env:"PORT" envDefault:"9090"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	SentryDSN string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
