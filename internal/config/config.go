package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Server struct {
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"development"`
}

// DB holds the Postgres settings. URL is optional: when empty the
// service falls back to the in-memory store.
type DB struct {
	URL             string        `env:"DATABASE_URL"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR" envDefault:"db/migrations"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"8"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"15m"`
}

// Kafka holds the lead event stream settings. BootstrapServers is
// optional: when empty no events are published.
type Kafka struct {
	BootstrapServers string `env:"KAFKA_BOOTSTRAP_SERVERS"`
	LeadTopic        string `env:"KAFKA_LEAD_TOPIC" envDefault:"audit-service.leads"`
}

type Config struct {
	Server Server
	DB     DB
	Kafka  Kafka
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
