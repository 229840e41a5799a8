package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_MODE", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
		"CONTRACTS_TABLE", "ITEMS_TABLE", "REDIS_ADDR", "REDIS_DB", "ITEM_CACHE_TTL",
		"MERCADOPAGO_ACCESS_TOKEN", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.LogMode != "dev" || cfg.AWSRegion != "us-east-1" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AWSAccessKeyID != "local" || cfg.AWSSecretAccessKey != "local" {
		t.Fatalf("expected local credentials, got %+v", cfg)
	}
	if cfg.ContractsTable != "maintenance_contracts" || cfg.ItemsTable != "items" {
		t.Fatalf("unexpected tables: %+v", cfg)
	}
	if cfg.RedisAddr != "" || cfg.RedisDB != 0 || cfg.ItemCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected cache config: %+v", cfg)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("expected mock disabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTRACTS_TABLE", "pmc")
	t.Setenv("DYNAMODB_ENDPOINT", " http://dynamodb:8000 ")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ITEM_CACHE_TTL", "30s")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "Yes")

	cfg := Load()
	if cfg.Port != "9090" || cfg.ContractsTable != "pmc" || cfg.DynamoDBEndpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 || cfg.ItemCacheTTL != 30*time.Second {
		t.Fatalf("unexpected cache overrides: %+v", cfg)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock enabled through MERCADOPAGO_MOCK")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "x")
	t.Setenv("ITEM_CACHE_TTL", "-5s")

	cfg := Load()
	if cfg.RedisDB != 0 || cfg.ItemCacheTTL != 10*time.Minute {
		t.Fatalf("expected defaults for invalid values, got %+v", cfg)
	}
}
