package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
	StorageMemory   = "memory"
)

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTPCfg struct {
	Port              int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitRequests int           `env:"HTTP_RATE_LIMIT_REQUESTS" envDefault:"100"`
	RateLimitWindow   time.Duration `env:"HTTP_RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type GrpcCfg struct {
	Port int `env:"GRPC_PORT" envDefault:"3010"`
}

type StorageCfg struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
	FixtureFile    string        `env:"STORAGE_FIXTURE_FILE" envDefault:""`
}

type MongoCfg struct {
	Host        string `env:"MONGO_HOST" envDefault:"mongo-customers"`
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-customers"`
	User        string `env:"POSTGRES_USER" envDefault:""`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Database    string `env:"POSTGRES_DB" envDefault:"customers"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// RedisCfg configures customer cache, cache is disabled when Addr is empty
type RedisCfg struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:""`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	TimeToLive time.Duration `env:"REDIS_CUSTOMER_TIME_TO_LIVE" envDefault:"10m"`
}

// JwtCfg configures access token validation, auth is disabled when PublicKeyFile is empty
type JwtCfg struct {
	PublicKeyFile string `env:"AUTH_JWT_PUBLIC_KEY_FILE" envDefault:""`
	SigningMethod jwt.SigningMethod
	PublicKey     crypto.PublicKey
}

type ViewCfg struct {
	CommerceCustomersSectionName string `env:"VIEW_COMMERCE_CUSTOMERS_SECTION_NAME" envDefault:"customer_account_bridge.sections.commerce_customers"`
}

type Config struct {
	LogCfg      LogCfg
	HTTPCfg     HTTPCfg
	GrpcCfg     GrpcCfg
	StorageCfg  StorageCfg
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	JwtCfg      JwtCfg
	ViewCfg     ViewCfg
}

// AuthEnabled reports whether access tokens must be verified
func (c Config) AuthEnabled() bool {
	return c.JwtCfg.PublicKey != nil
}

// CacheEnabled reports whether customers must be cached in redis
func (c Config) CacheEnabled() bool {
	return c.RedisCfg.Addr != ""
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.StorageCfg.Driver {
	case StoragePostgres, StorageMongo:
	case StorageMemory:
		if cfg.StorageCfg.FixtureFile == "" {
			return cfg, fmt.Errorf("STORAGE_FIXTURE_FILE is required for %s storage", StorageMemory)
		}
	default:
		return cfg, fmt.Errorf("unsupported storage driver %q", cfg.StorageCfg.Driver)
	}

	cfg.JwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	if cfg.JwtCfg.PublicKeyFile == "" {
		return cfg, nil
	}

	jwtPublicKeyBytes, err := os.ReadFile(cfg.JwtCfg.PublicKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.JwtCfg.PublicKey = jwtPublicKey

	return cfg, nil
}
