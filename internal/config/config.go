package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage  string   `validate:"required,oneof=postgres memory"`
	Postgres Postgres

	Kafka Kafka `validate:"required"`
	Redis Redis

	Printful    Printful    `validate:"required"`
	Fulfillment Fulfillment `validate:"required"`
	Catalog     Catalog     `validate:"required"`
	Cache       Cache       `validate:"required"`
	Tracing     Tracing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
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

// Redis нужен только для блокировок между репликами; пустой Addr - блокировки в памяти процесса.
type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Printful struct {
	BaseURL string `validate:"required,url"`
	Token   string `validate:"required_if=Sandbox false"`
	StoreID string

	// В sandbox клиент отвечает заготовленными данными и заказы не подтверждаются.
	Sandbox bool

	RequestTimeout time.Duration `validate:"gt=0"`
	DefaultCountry string        `validate:"required,len=2"`
	Shipping       string        `validate:"required"`
}

type Fulfillment struct {
	SubmitTimeout  time.Duration `validate:"gt=0"`
	ConfirmTimeout time.Duration `validate:"gt=0"`
	LockTTL        time.Duration `validate:"gt=0"`
	AutoFulfill    bool

	WriteAttempts     int           `validate:"gte=1"`
	WriteInitialDelay time.Duration `validate:"gt=0"`
}

// WriteBackoffMultiplier - множитель задержки между повторами записи статуса.
const WriteBackoffMultiplier = 2

// LockBudget - сколько максимум длится участок под блокировкой заказа:
// отправка, все повторы записи статуса и подтверждение.
func (f Fulfillment) LockBudget() time.Duration {
	var backoff time.Duration
	delay := f.WriteInitialDelay
	for i := 1; i < f.WriteAttempts; i++ {
		backoff += delay
		delay *= WriteBackoffMultiplier
	}
	return f.SubmitTimeout + backoff + f.ConfirmTimeout
}

func validateFulfillment(sl validator.StructLevel) {
	f := sl.Current().Interface().(Fulfillment)
	if f.LockTTL <= f.LockBudget() {
		sl.ReportError(f.LockTTL, "LockTTL", "LockTTL", "gt_lock_budget", f.LockBudget().String())
	}
}

type Catalog struct {
	FallbackPrice    decimal.Decimal
	InventoryQty     int `validate:"gt=0"`
	FetchConcurrency int `validate:"gte=1,lte=32"`
}

type Cache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type Tracing struct {
	ServiceName    string
	JaegerEndpoint string `validate:"omitempty,url"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	token := env("PRINTFUL_API_TOKEN", "")

	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: env("STORAGE", StoragePostgres),

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "merch"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", true),
			GroupID: env("KAFKA_GROUP_ID", "merch-fulfillment"),
			Topic:   env("KAFKA_TOPIC", "payments"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Printful: Printful{
			BaseURL: env("PRINTFUL_BASE_URL", "https://api.printful.com"),
			Token:   token,
			StoreID: env("PRINTFUL_STORE_ID", ""),
			Sandbox: envBool("PRINTFUL_SANDBOX", token == "demo"),

			RequestTimeout: envDuration("PRINTFUL_REQUEST_TIMEOUT", 15*time.Second),
			DefaultCountry: env("PRINTFUL_DEFAULT_COUNTRY", "US"),
			Shipping:       env("PRINTFUL_SHIPPING", "STANDARD"),
		},

		Fulfillment: Fulfillment{
			SubmitTimeout:  envDuration("FULFILLMENT_SUBMIT_TIMEOUT", 20*time.Second),
			ConfirmTimeout: envDuration("FULFILLMENT_CONFIRM_TIMEOUT", 20*time.Second),
			LockTTL:        envDuration("FULFILLMENT_LOCK_TTL", time.Minute),
			AutoFulfill:    envBool("FULFILLMENT_AUTO", false),

			WriteAttempts:     envInt("FULFILLMENT_WRITE_ATTEMPTS", 5),
			WriteInitialDelay: envDuration("FULFILLMENT_WRITE_INITIAL_DELAY", 100*time.Millisecond),
		},

		Catalog: Catalog{
			FallbackPrice:    envDecimal("CATALOG_FALLBACK_PRICE", decimal.RequireFromString("25.00")),
			InventoryQty:     envInt("CATALOG_INVENTORY_QTY", 999),
			FetchConcurrency: envInt("CATALOG_FETCH_CONCURRENCY", 4),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Tracing: Tracing{
			ServiceName:    env("TRACING_SERVICE_NAME", "merch-fulfillment"),
			JaegerEndpoint: env("JAEGER_ENDPOINT", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(validateFulfillment, Fulfillment{})
	if c.Storage == StorageMemory {
		return validate.StructExcept(c, "Postgres")
	}
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

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
