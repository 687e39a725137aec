package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Order workflow consistency modes.
const (
	// ConsistencyTransactional runs item and order writes in one transaction.
	ConsistencyTransactional = "transactional"
	// ConsistencyCompensating deletes already created items when a later step fails.
	ConsistencyCompensating = "compensating"
	// ConsistencyNone leaves created items in place on failure.
	ConsistencyNone = "none"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http
	API  API `validate:"required"`

	Cors CORS `validate:"required"`

	Kafka Kafka

	Postgres Postgres `validate:"required"`

	Auth  Auth  `validate:"required"`
	Media Media `validate:"required"`
	Cache Cache

	Orders Orders `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type API struct {
	Prefix    string `validate:"required,startswith=/"`
	PublicURL string `validate:"required,url"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Auth struct {
	Secret     string        `validate:"required,min=16"`
	TokenTTL   time.Duration `validate:"gt=0"`
	BcryptCost int           `validate:"gte=4,lte=31"`
}

type Media struct {
	Dir           string `validate:"required"`
	MaxUploadSize int64  `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Orders struct {
	Consistency string `validate:"required,oneof=transactional compensating none"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		API: API{
			Prefix:    env("API_URL", "/api/v1"),
			PublicURL: env("PUBLIC_URL", "http://localhost:8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "eshop-service"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "eshop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Auth: Auth{
			Secret:     env("SECRET", ""),
			TokenTTL:   envDuration("TOKEN_TTL", 8*time.Hour),
			BcryptCost: envInt("BCRYPT_COST", 10),
		},

		Media: Media{
			Dir:           env("UPLOADS_DIR", "public/uploads"),
			MaxUploadSize: int64(envInt("MAX_UPLOAD_SIZE", 10<<20)),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Orders: Orders{
			Consistency: env("ORDER_CONSISTENCY", ConsistencyTransactional),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
