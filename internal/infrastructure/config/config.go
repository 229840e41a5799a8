package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultRegion         = "us-east-1"
	defaultContractsTable = "maintenance_contracts"
	defaultItemsTable     = "items"
	defaultItemCacheTTL   = 10 * time.Minute
)

// Config is read once at startup from the environment (.env is autoloaded
// by cmd/api).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - LOG_MODE (dev | prod, default: dev)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - CONTRACTS_TABLE, ITEMS_TABLE
//   - REDIS_ADDR (optional; empty disables the item cache), REDIS_PASSWORD, REDIS_DB, ITEM_CACHE_TTL
//   - MERCADOPAGO_ACCESS_TOKEN, PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK
type Config struct {
	Port    string
	LogMode string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	ContractsTable     string
	ItemsTable         string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ItemCacheTTL  time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

func Load() Config {
	return Config{
		Port:    getenvDefault("PORT", defaultPort),
		LogMode: getenvDefault("LOG_MODE", "dev"),

		AWSRegion: getenvDefault("AWS_REGION", defaultRegion),
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		ContractsTable:     getenvDefault("CONTRACTS_TABLE", defaultContractsTable),
		ItemsTable:         getenvDefault("ITEMS_TABLE", defaultItemsTable),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),
		ItemCacheTTL:  getenvDuration("ITEM_CACHE_TTL", defaultItemCacheTTL),

		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
