package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Cache    CacheConfig    `envPrefix:"CACHE_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Amazon   AmazonConfig   `envPrefix:"AMAZON_"`
	Walmart  WalmartConfig  `envPrefix:"WALMART_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type DatabaseConfig struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"savings"`
}

type CacheConfig struct {
	// Backend selects the cache implementation: "memory" or "redis".
	Backend       string        `env:"BACKEND" envDefault:"memory"`
	TTL           time.Duration `env:"TTL" envDefault:"1h"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"analytics-events"`
}

// AmazonConfig holds Product Advertising API credentials. The adapter is
// considered configured only when key, secret and affiliate tag are all set.
type AmazonConfig struct {
	APIKey       string `env:"API_KEY"`
	APISecret    string `env:"API_SECRET"`
	AffiliateTag string `env:"AFFILIATE_TAG"`
	Region       string `env:"REGION" envDefault:"US"`
}

// WalmartConfig holds Walmart affiliate API credentials.
type WalmartConfig struct {
	APIKey      string `env:"API_KEY"`
	AffiliateID string `env:"AFFILIATE_ID"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
