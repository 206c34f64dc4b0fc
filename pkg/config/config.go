package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int           `env:"HTTP_PORT"`
	PostgresDSN      string        `env:"POSTGRES_DSN"`
	PostgresMaxConns int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	AuthServiceURL   string        `env:"AUTH_SERVICE_URL"`
	FilesBaseURL     string        `env:"FILES_BASE_URL"`
	PresignTTL       time.Duration `env:"PRESIGN_TTL" envDefault:"2h"`
	RetainDocuments  bool          `env:"RETAIN_DOCUMENTS" envDefault:"false"`
	S3               S3
	Kafka            Kafka
}

type S3 struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Region    string `env:"S3_REGION" envDefault:"europe"`
	UseSSL    bool   `env:"S3_USE_SSL" envDefault:"false"`
}

type Kafka struct {
	Brokers               []string `env:"KAFKA_BROKERS"`
	ConsumerID            string   `env:"KAFKA_CONSUMER_ID"`
	PaymentCompletedTopic string   `env:"KAFKA_PAYMENT_COMPLETED_TOPIC"`
	InvoiceCreatedTopic   string   `env:"KAFKA_INVOICE_CREATED_TOPIC"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
