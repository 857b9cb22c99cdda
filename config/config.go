package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogConsole switches to a human-readable text format for local runs.
	LogConsole bool `env:"LOG_CONSOLE" envDefault:"false"`

	// Kafka configuration for the confirmation notifications.
	KafkaBrokers            []string `env:"KAFKA_BROKERS,required" envSeparator:","`
	KafkaNotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"payments.confirmations"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
