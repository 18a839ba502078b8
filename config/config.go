package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Persistence backend names.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Chain       ChainConfig       `mapstructure:"chain"`
	Session     SessionConfig     `mapstructure:"session"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// PersistenceConfig selects and configures the document-store backend.
type PersistenceConfig struct {
	Backend  string         `mapstructure:"backend"` // redis or postgres
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

// StorageConfig configures the two decentralized-storage adapters.
type StorageConfig struct {
	Pieces  PiecesConfig  `mapstructure:"pieces"`
	Pinning PinningConfig `mapstructure:"pinning"`
}

// PiecesConfig configures the piece-storage (Filecoin-style) provider.
type PiecesConfig struct {
	Endpoint string        `mapstructure:"endpoint"` // provider base URL, empty = adapter disabled
	Timeout  time.Duration `mapstructure:"timeout"`
}

// PinningConfig configures the pinning-service (IPFS-style) provider.
type PinningConfig struct {
	Endpoint    string        `mapstructure:"endpoint"`     // node add endpoint base URL
	APIKey      string        `mapstructure:"api_key"`      // static bearer key
	GatewayHost string        `mapstructure:"gateway_host"` // public gateway for downloads
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ChainConfig configures the read-only wallet session adapter.
type ChainConfig struct {
	RPCURL  string        `mapstructure:"rpc_url"` // empty = no wallet available
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig configures demo session tokens issued on wallet connect.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VL_ (VisionLand).
// Nested keys use underscore: VL_PERSISTENCE_BACKEND, VL_CHAIN_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("persistence.backend", "redis")
	v.SetDefault("persistence.redis.host", "localhost")
	v.SetDefault("persistence.redis.port", 6379)
	v.SetDefault("persistence.redis.password", "")
	v.SetDefault("persistence.redis.db", 0)
	v.SetDefault("persistence.postgres.host", "localhost")
	v.SetDefault("persistence.postgres.port", 5432)
	v.SetDefault("persistence.postgres.user", "postgres")
	v.SetDefault("persistence.postgres.password", "postgres")
	v.SetDefault("persistence.postgres.dbname", "visionland")
	v.SetDefault("persistence.postgres.sslmode", "disable")
	v.SetDefault("persistence.postgres.max_conns", 10)
	v.SetDefault("persistence.postgres.min_conns", 2)
	v.SetDefault("persistence.postgres.conn_max_lifetime", "30m")
	v.SetDefault("storage.pieces.endpoint", "")
	v.SetDefault("storage.pieces.timeout", "30s")
	v.SetDefault("storage.pinning.endpoint", "https://node.lighthouse.storage")
	v.SetDefault("storage.pinning.api_key", "")
	v.SetDefault("storage.pinning.gateway_host", "gateway.lighthouse.storage")
	v.SetDefault("storage.pinning.timeout", "30s")
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.timeout", "10s")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.expiry", "24h")
	v.SetDefault("session.issuer", "visionland")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VL_PERSISTENCE_REDIS_HOST -> persistence.redis.host
	v.SetEnvPrefix("VL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Persistence.Backend != BackendRedis && cfg.Persistence.Backend != BackendPostgres {
		return nil, fmt.Errorf("unsupported persistence backend %q", cfg.Persistence.Backend)
	}

	return &cfg, nil
}
