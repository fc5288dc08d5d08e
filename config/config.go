package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	State    StateConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Auth     AuthConfig
	Sync     SyncConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// State drivers.
const (
	StateSQLite   = "sqlite"
	StatePostgres = "postgres"
	StateRedis    = "redis"
	StateMemory   = "memory"
)

type StateConfig struct {
	Driver string
	// AutosaveInterval in seconds.
	AutosaveInterval int
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

type ElasticsearchConfig struct {
	Enabled   bool
	Addresses []string
	Username  string
	Password  string
}

type AuthConfig struct {
	// DemoPassword is accepted for the demo accounts; empty disables it.
	DemoPassword string
	BcryptCost   int
}

// SyncConfig holds the defaults of the S3-compatible blob client. Driver
// "memory" keeps blobs in process.
type SyncConfig struct {
	Driver    string
	Region    string
	Endpoint  string
	PathStyle bool
}

type MetricsConfig struct {
	Port string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8082"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		State: StateConfig{
			Driver:           strings.ToLower(getEnv("STATE_DRIVER", StateSQLite)),
			AutosaveInterval: getEnvInt("STATE_AUTOSAVE_INTERVAL", 5),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "clinic"),
			Password:        getEnv("POSTGRES_PASSWORD", "clinic"),
			DBName:          getEnv("POSTGRES_DB", "clinic_state"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "data/clinic.db"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_ORDERS", "clinic.orders.events"),
			GroupID: getEnv("KAFKA_GROUP_INVENTORY", "clinic-inventory"),
		},
		Elastic: ElasticsearchConfig{
			Enabled:   getEnvBool("ELASTICSEARCH_ENABLED", false),
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),
		},
		Auth: AuthConfig{
			DemoPassword: getEnv("AUTH_DEMO_PASSWORD", "1234"),
			BcryptCost:   getEnvInt("AUTH_BCRYPT_COST", 0),
		},
		Sync: SyncConfig{
			Driver:    strings.ToLower(getEnv("SYNC_DRIVER", "s3")),
			Region:    getEnv("SYNC_S3_REGION", "eu-central-1"),
			Endpoint:  getEnv("SYNC_S3_ENDPOINT", ""),
			PathStyle: getEnvBool("SYNC_S3_PATH_STYLE", false),
		},
		Metrics: MetricsConfig{
			Port: getEnv("METRICS_PORT", ":9102"),
		},
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.State.Driver {
	case StateSQLite, StatePostgres, StateRedis, StateMemory:
	default:
		return fmt.Errorf("unknown STATE_DRIVER %q", c.State.Driver)
	}
	if c.State.AutosaveInterval < 1 {
		return fmt.Errorf("STATE_AUTOSAVE_INTERVAL must be at least 1 second")
	}
	switch c.Sync.Driver {
	case "s3", "memory":
	default:
		return fmt.Errorf("unknown SYNC_DRIVER %q", c.Sync.Driver)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS required when Kafka is enabled")
	}
	return nil
}

// IsDevelopment reports whether APP_ENV selects the development logger.
func (c *Config) IsDevelopment() bool {
	switch c.Server.AppEnv {
	case "dev", "development":
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
