package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Slips    Slips
	QR       QR
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
	PublicBaseURL string `env:"HTTP_PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers         []string `env:"KAFKA_BROKERS"`
	SlipSharedTopic string   `env:"KAFKA_SLIP_SHARED_TOPIC" envDefault:"ips.slip_shared"`
}

type Slips struct {
	TTL           time.Duration `env:"SLIPS_TTL" envDefault:"720h"`
	PurgeInterval time.Duration `env:"SLIPS_PURGE_INTERVAL" envDefault:"1h"`
}

type QR struct {
	Size int `env:"QR_SIZE" envDefault:"256"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
